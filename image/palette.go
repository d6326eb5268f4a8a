package image

import (
	"image/color"
	"strconv"
	"strings"
)

// Entry is a named palette color
type Entry struct {
	Name  string
	Color color.NRGBA
}

// Palette maps unique names to colors, preserving insertion order. The zero
// value is not usable, use NewPalette.
type Palette struct {
	entries []Entry
	names   map[string]int
	colors  map[color.NRGBA]int
}

// NewPalette returns an empty palette
func NewPalette() *Palette {
	return &Palette{
		names:  make(map[string]int),
		colors: make(map[color.NRGBA]int),
	}
}

func validName(name string) bool {
	if name == "" || name == Repeat || strings.ContainsAny(name, " \t\n\r") {
		return false
	}
	// A name that reads as a section marker could never be referenced
	for _, marker := range []string{colorsStart, colorsEnd, dataStart, dataEnd} {
		if strings.EqualFold(name, marker) {
			return false
		}
	}
	return true
}

// Add appends the named color to the palette
func (p *Palette) Add(name string, c color.NRGBA) error {
	if !validName(name) {
		return ErrInvalidColorName
	}
	if _, ok := p.names[name]; ok {
		return ErrDuplicateColorName
	}
	p.add(name, c)
	return nil
}

func (p *Palette) add(name string, c color.NRGBA) int {
	i := len(p.entries)
	p.entries = append(p.entries, Entry{Name: name, Color: c})
	p.names[name] = i
	// First entry wins for a color defined under several names
	if _, ok := p.colors[c]; !ok {
		p.colors[c] = i
	}
	return i
}

// Len returns the number of colors in the palette
func (p *Palette) Len() int {
	return len(p.entries)
}

// Lookup returns the color with the given name
func (p *Palette) Lookup(name string) (color.NRGBA, bool) {
	i, ok := p.names[name]
	if !ok {
		return color.NRGBA{}, false
	}
	return p.entries[i].Color, true
}

// Name returns the name of the first entry with the given color
func (p *Palette) Name(c color.NRGBA) (string, bool) {
	i, ok := p.colors[c]
	if !ok {
		return "", false
	}
	return p.entries[i].Name, true
}

// Entries returns a copy of the palette entries in insertion order
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

func (p *Palette) index(name string) (int, bool) {
	i, ok := p.names[name]
	return i, ok
}

// intern returns the index of the entry for c, adding an entry under a
// synthesized name if there isn't one
func (p *Palette) intern(c color.NRGBA) int {
	if i, ok := p.colors[c]; ok {
		return i
	}
	for n := len(p.entries); ; n++ {
		name := NamePrefix + strconv.Itoa(n)
		if _, ok := p.names[name]; !ok {
			return p.add(name, c)
		}
	}
}

func (p *Palette) clone() *Palette {
	dup := NewPalette()
	for _, e := range p.entries {
		dup.add(e.Name, e.Color)
	}
	return dup
}
