package image

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Pixels returns the colors of every pixel in row-major order
func (d *Document) Pixels() []color.NRGBA {
	pix := make([]color.NRGBA, d.width*d.height)
	for i := range pix {
		pix[i] = d.color(i)
	}
	return pix
}

// Image returns the document rendered as an image.NRGBA
func (d *Document) Image() *image.NRGBA {
	m := image.NewNRGBA(d.Bounds())
	for i := 0; i < d.width*d.height; i++ {
		c := d.color(i)
		p := m.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
	return m
}

// FromPixels builds a document from width*height colors in row-major order.
// Each distinct color gets exactly one palette entry, named in order of
// first appearance.
func FromPixels(pix []color.NRGBA, width, height int) (*Document, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, ErrInvalidDimensions
	}

	d := &Document{
		width:   width,
		height:  height,
		palette: NewPalette(),
		grid:    make([]int32, len(pix)),
	}

	for i, c := range pix {
		if i > 0 && c == pix[i-1] {
			d.grid[i] = d.grid[i-1]
			continue
		}
		d.grid[i] = int32(d.palette.intern(c))
	}

	return d, nil
}

// FromImage builds a document from m, translated so that its top-left
// corner is at (0, 0)
func FromImage(m image.Image) (*Document, error) {
	b := m.Bounds()
	if b.Empty() {
		return nil, ErrInvalidDimensions
	}

	pix := make([]color.NRGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pix = append(pix, color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA))
		}
	}

	return FromPixels(pix, b.Dx(), b.Dy())
}

func countColors(m image.Image, limit int) int {
	b := m.Bounds()
	colors := make(map[color.NRGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			colors[color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)] = struct{}{}
			if len(colors) > limit {
				return len(colors)
			}
		}
	}
	return len(colors)
}

// Reduce returns m limited to at most n distinct colors. Images that
// already fit are returned unchanged, anything else is quantized.
func Reduce(m image.Image, n int) image.Image {
	if n <= 0 || countColors(m, n) <= n {
		return m
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}
