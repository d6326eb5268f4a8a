package image

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red         = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green       = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	blue        = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	transparent = color.NRGBA{}
)

func TestPaletteAdd(t *testing.T) {
	p := NewPalette()
	require.Nil(t, p.Add("red", red))
	require.Nil(t, p.Add("scarlet", red))

	assert.Equal(t, ErrDuplicateColorName, p.Add("red", blue))
	assert.Equal(t, ErrInvalidColorName, p.Add("", blue))
	assert.Equal(t, ErrInvalidColorName, p.Add(Repeat, blue))
	assert.Equal(t, ErrInvalidColorName, p.Add("dark blue", blue))
	for _, marker := range []string{"[colors]", "[/COLORS]", "[Data]", "[/data]"} {
		assert.Equal(t, ErrInvalidColorName, p.Add(marker, blue), marker)
	}
	assert.Equal(t, 2, p.Len())

	c, ok := p.Lookup("scarlet")
	assert.True(t, ok)
	assert.Equal(t, red, c)

	_, ok = p.Lookup("blue")
	assert.False(t, ok)

	// First definition of a color wins
	name, ok := p.Name(red)
	assert.True(t, ok)
	assert.Equal(t, "red", name)

	_, ok = p.Name(blue)
	assert.False(t, ok)

	assert.Equal(t, []Entry{{"red", red}, {"scarlet", red}}, p.Entries())
}

func TestPaletteIntern(t *testing.T) {
	p := NewPalette()
	require.Nil(t, p.Add("c1", red))

	assert.Equal(t, 1, p.intern(green))
	assert.Equal(t, 0, p.intern(red))
	assert.Equal(t, 2, p.intern(blue))
	assert.Equal(t, 1, p.intern(green))

	assert.Equal(t, []Entry{{"c1", red}, {"c2", green}, {"c3", blue}}, p.Entries())
}

func TestPaletteClone(t *testing.T) {
	p := NewPalette()
	require.Nil(t, p.Add("red", red))

	dup := p.clone()
	require.Nil(t, dup.Add("blue", blue))

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, dup.Len())
}
