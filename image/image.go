/*
Package image implements a BIF image decoder and encoder.

BIF is a whitespace separated text format. A file starts with the width and
height in pixels, followed by a palette of named colors between [colors] and
[/colors] markers, one "name red green blue alpha" record per color. The
pixels follow between [data] and [/data] markers as width*height color names
in row-major order. The token ` repeats the previous color name:

	2 2
	[colors]
	red 255 0 0 255
	clear 0 0 0 0
	[/colors]
	[data]
	red `
	clear red
	[/data]

Line breaks carry no meaning. A data block that is short is padded with
transparent black.
*/
package image

const (
	colorsStart = "[colors]"
	colorsEnd   = "[/colors]"
	dataStart   = "[data]"
	dataEnd     = "[/data]"

	// Repeat is the data token that repeats the previous color
	Repeat = "`"

	// NamePrefix prefixes the color names synthesized when encoding
	NamePrefix = "c"

	// MaxPixels bounds width*height of a decoded document
	MaxPixels = 1 << 28
)
