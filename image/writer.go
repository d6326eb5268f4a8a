package image

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
)

// countingWriter counts the bytes that reach w
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(d *Document) error {
	if _, err := fmt.Fprintf(e.w, "%d %d\n%s\n", d.width, d.height, colorsStart); err != nil {
		return err
	}

	for _, c := range d.palette.entries {
		if _, err := fmt.Fprintf(e.w, "%s %d %d %d %d\n", c.Name, c.Color.R, c.Color.G, c.Color.B, c.Color.A); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(e.w, "%s\n%s\n", colorsEnd, dataStart); err != nil {
		return err
	}

	// Uncolored cells only ever trail a short data block, stopping at the
	// first one lets the decoder pad them again
	prev := int32(noColor)
	for y := 0; y < d.height; y++ {
		var row []byte
		for x := 0; x < d.width; x++ {
			i := d.ref(y*d.width + x)
			if i == noColor {
				break
			}
			if len(row) > 0 {
				row = append(row, ' ')
			}
			if i == prev {
				row = append(row, Repeat...)
			} else {
				row = append(row, d.palette.entries[i].Name...)
			}
			prev = i
		}
		if len(row) > 0 {
			if _, err := e.w.Write(append(row, '\n')); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(e.w, "%s\n", dataEnd); err != nil {
		return err
	}

	return e.w.Flush()
}

// WriteTo writes d to w in BIF format. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	e := encoder{w: bufio.NewWriter(cw)}
	err := e.encode(d)
	return cw.n, err
}

// MarshalText encodes d in BIF format
func (d *Document) MarshalText() ([]byte, error) {
	b := new(bytes.Buffer)
	if _, err := d.WriteTo(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Options are the encoding parameters
type Options struct {
	// MaxColors limits the palette size, images with more colors are
	// quantized first. Zero means no limit.
	MaxColors int
}

// Encode writes the Image m to w in BIF format. Options may be nil.
func Encode(w io.Writer, m image.Image, o *Options) error {
	if o != nil && o.MaxColors > 0 {
		m = Reduce(m, o.MaxColors)
	}

	d, err := FromImage(m)
	if err != nil {
		return err
	}

	_, err = d.WriteTo(w)
	return err
}
