package image

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	tables := map[string]struct {
		data string
		want string
	}{
		"repeat": {
			data: "red red blue red",
			want: "red `\nblue red\n",
		},
		"repeat across rows": {
			data: "blue red red red",
			want: "blue red\n` `\n",
		},
		"short": {
			data: "red",
			want: "red\n",
		},
		"empty": {
			data: "",
			want: "",
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			d, err := Parse(strings.NewReader(twoColors + "[data]\n" + table.data + "\n[/data]\n"))
			require.Nil(t, err)

			b := new(bytes.Buffer)
			n, err := d.WriteTo(b)
			require.Nil(t, err)
			assert.Equal(t, int64(b.Len()), n)
			assert.Equal(t, twoColors+"[data]\n"+table.want+"[/data]\n", b.String())

			// Reading it back gives the same pixels
			dup, err := Parse(b)
			require.Nil(t, err)
			assert.Equal(t, d.Pixels(), dup.Pixels())
		})
	}
}

// shortWriter accepts at most n bytes
type shortWriter struct {
	n int
}

func (w *shortWriter) Write(b []byte) (int, error) {
	if len(b) > w.n {
		n := w.n
		w.n = 0
		return n, io.ErrShortWrite
	}
	w.n -= len(b)
	return len(b), nil
}

func TestWriteToShortWrite(t *testing.T) {
	d, err := Parse(strings.NewReader(twoColors + "[data] red ` blue red [/data]"))
	require.Nil(t, err)

	n, err := d.WriteTo(&shortWriter{n: 10})
	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(10), n)

	n, err = d.WriteTo(&shortWriter{})
	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

func TestMarshalText(t *testing.T) {
	d, err := FromPixels([]color.NRGBA{red}, 1, 1)
	require.Nil(t, err)

	b, err := d.MarshalText()
	require.Nil(t, err)
	assert.Equal(t, "1 1\n[colors]\nc0 255 0 0 255\n[/colors]\n[data]\nc0\n[/data]\n", string(b))
}

func TestEncode(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	m.SetNRGBA(0, 0, red)
	m.SetNRGBA(1, 0, red)
	m.SetNRGBA(2, 0, green)

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, m, nil))
	assert.Equal(t, "3 1\n[colors]\nc0 255 0 0 255\nc1 0 255 0 255\n[/colors]\n[data]\nc0 ` c1\n[/data]\n", b.String())

	assert.Equal(t, ErrInvalidDimensions, Encode(b, image.NewNRGBA(image.Rectangle{}), nil))
}

func TestEncodeMaxColors(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), uint8(y * 16), 0x80, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, m, &Options{MaxColors: 8}))

	d, err := Parse(b)
	require.Nil(t, err)
	assert.LessOrEqual(t, d.Palette().Len(), 8)
	assert.Equal(t, m.Bounds(), d.Bounds())
}
