package image

import (
	"fmt"
	"image"
	"image/color"
)

const noColor = -1

// Document is a decoded BIF image; a palette and a grid of references into
// it. The grid stops at the end of a short data block, the missing cells
// hold no color and read as transparent black. A Document is not modified once built and implements
// image.Image.
type Document struct {
	width, height int
	palette       *Palette
	grid          []int32
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return ErrInvalidDimensions
	}
	return nil
}

// NewDocument returns a width by height document whose pixels are given in
// row-major order as names from palette. The palette is copied.
func NewDocument(width, height int, palette *Palette, names []string) (*Document, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(names) != width*height {
		return nil, fmt.Errorf("%w: %d names for %d by %d pixels", ErrInvalidDimensions, len(names), width, height)
	}
	if palette == nil {
		palette = NewPalette()
	}

	d := &Document{
		width:   width,
		height:  height,
		palette: palette.clone(),
		grid:    make([]int32, len(names)),
	}
	for i, name := range names {
		j, ok := d.palette.index(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefinedColorReference, name)
		}
		d.grid[i] = int32(j)
	}

	return d, nil
}

// Width returns the width in pixels
func (d *Document) Width() int {
	return d.width
}

// Height returns the height in pixels
func (d *Document) Height() int {
	return d.height
}

// Palette returns a copy of the document palette
func (d *Document) Palette() *Palette {
	return d.palette.clone()
}

// NameAt returns the palette name of the pixel at (x, y). It returns false
// for pixels outside the image or left uncolored by a short data block.
func (d *Document) NameAt(x, y int) (string, bool) {
	if !(image.Point{x, y}.In(d.Bounds())) {
		return "", false
	}
	i := d.ref(y*d.width + x)
	if i == noColor {
		return "", false
	}
	return d.palette.entries[i].Name, true
}

// ColorModel returns color.NRGBAModel; BIF channels are not premultiplied.
func (d *Document) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds returns the document rectangle anchored at (0, 0)
func (d *Document) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// At returns the color of the pixel at (x, y)
func (d *Document) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(d.Bounds())) {
		return color.NRGBA{}
	}
	return d.color(y*d.width + x)
}

// ref returns the palette index of cell i
func (d *Document) ref(i int) int32 {
	if i < len(d.grid) {
		return d.grid[i]
	}
	return noColor
}

func (d *Document) color(i int) color.NRGBA {
	if j := d.ref(i); j != noColor {
		return d.palette.entries[j].Color
	}
	return color.NRGBA{}
}
