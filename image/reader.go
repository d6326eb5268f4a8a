package image

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"io/ioutil"
	"log"
	"strconv"
	"strings"
)

// Decoder parses BIF documents. The zero value is ready to use.
type Decoder struct {
	// Logger receives warnings about input that is accepted but
	// irregular, such as a short data block. Nil discards them.
	Logger *log.Logger

	// Strict makes a missing [/data] marker an error
	Strict bool
}

type decoder struct {
	l      *lexer
	logger *log.Logger
	strict bool

	width, height int
	palette       *Palette
	grid          []int32
}

func syntaxError(s Section, t token, err error) error {
	return &SyntaxError{Section: s, Token: t.text, Line: t.line, Err: err}
}

// next returns the next token, turning the end of input into a SyntaxError
// of the given kind
func (d *decoder) next(s Section, kind error) (token, error) {
	t, err := d.l.next()
	if err == io.EOF {
		return token{}, &SyntaxError{Section: s, Line: d.l.line, Err: kind}
	}
	return t, err
}

func (d *decoder) readDimension() (int, error) {
	t, err := d.next(SectionHeader, ErrMalformedHeader)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(t.text, 10, 32)
	if err != nil || n < 0 {
		return 0, syntaxError(SectionHeader, t, ErrMalformedHeader)
	}
	if n == 0 {
		return 0, syntaxError(SectionHeader, t, ErrInvalidDimensions)
	}
	return int(n), nil
}

func (d *decoder) readHeader() error {
	var err error
	if d.width, err = d.readDimension(); err != nil {
		return err
	}
	if d.height, err = d.readDimension(); err != nil {
		return err
	}
	if err := checkDimensions(d.width, d.height); err != nil {
		return &SyntaxError{Section: SectionHeader, Token: strconv.Itoa(d.width) + " " + strconv.Itoa(d.height), Line: d.l.line, Err: err}
	}

	t, err := d.next(SectionHeader, ErrMissingColorBlock)
	if err != nil {
		return err
	}
	if !strings.EqualFold(t.text, colorsStart) {
		return syntaxError(SectionHeader, t, ErrMissingColorBlock)
	}
	return nil
}

func (d *decoder) readColors() error {
	d.palette = NewPalette()
	for {
		name, err := d.next(SectionColors, ErrUnterminatedColorBlock)
		if err != nil {
			return err
		}
		if strings.EqualFold(name.text, colorsEnd) {
			return nil
		}
		if !validName(name.text) {
			return syntaxError(SectionColors, name, ErrInvalidColorName)
		}

		var ch [4]uint8
		for i := range ch {
			t, err := d.next(SectionColors, ErrUnterminatedColorBlock)
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(t.text, 10, 8)
			if err != nil {
				return syntaxError(SectionColors, t, ErrInvalidColorChannel)
			}
			ch[i] = uint8(v)
		}

		if _, ok := d.palette.index(name.text); ok {
			return syntaxError(SectionColors, name, ErrDuplicateColorName)
		}
		d.palette.add(name.text, color.NRGBA{ch[0], ch[1], ch[2], ch[3]})
	}
}

func (d *decoder) readData() error {
	t, err := d.next(SectionData, ErrMissingDataBlock)
	if err != nil {
		return err
	}
	if !strings.EqualFold(t.text, dataStart) {
		return syntaxError(SectionData, t, ErrMissingDataBlock)
	}

	// The grid grows with the data actually present, a short block is
	// never padded out
	n := d.width * d.height
	d.grid = make([]int32, 0, min(n, 1<<16))
	prev := int32(noColor)
	terminated := false

	for len(d.grid) < n {
		t, err := d.l.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(t.text, dataEnd) {
			terminated = true
			break
		}

		if t.text == Repeat {
			if prev == noColor {
				return syntaxError(SectionData, t, ErrRepeatBeforeAnyColor)
			}
			d.grid = append(d.grid, prev)
			continue
		}

		i, ok := d.palette.index(t.text)
		if !ok {
			return syntaxError(SectionData, t, ErrUndefinedColorReference)
		}
		d.grid = append(d.grid, int32(i))
		prev = int32(i)
	}

	if !terminated && len(d.grid) == n {
		var extra int
		for {
			t, err := d.l.next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if strings.EqualFold(t.text, dataEnd) {
				terminated = true
				break
			}
			extra++
		}
		if extra > 0 {
			d.logger.Printf("Ignoring %d data tokens beyond %d pixels\n", extra, n)
		}
	}

	if len(d.grid) < n {
		d.logger.Printf("Data block has %d of %d pixels, padding with transparent black\n", len(d.grid), n)
	}

	if !terminated {
		if d.strict {
			return &SyntaxError{Section: SectionData, Line: d.l.line, Err: ErrUnterminatedDataBlock}
		}
		d.logger.Println("Reached end of input before [/data]")
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.l = newLexer(r)

	if err := d.readHeader(); err != nil {
		return err
	}

	if err := d.readColors(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	return d.readData()
}

func (dec *Decoder) decoder() *decoder {
	logger := dec.Logger
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &decoder{
		logger: logger,
		strict: dec.Strict,
	}
}

// Parse reads a BIF document from r
func (dec *Decoder) Parse(r io.Reader) (*Document, error) {
	d := dec.decoder()
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return &Document{
		width:   d.width,
		height:  d.height,
		palette: d.palette,
		grid:    d.grid,
	}, nil
}

// Parse reads a BIF document from r with the default Decoder
func Parse(r io.Reader) (*Document, error) {
	return new(Decoder).Parse(r)
}

// Decode reads a BIF image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	d, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return d.Image(), nil
}

// DecodeConfig returns the color model and dimensions of a BIF image
// without decoding the data block.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := new(Decoder).decoder()
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}

// UnmarshalText parses b as a BIF document, replacing the contents of d
func (d *Document) UnmarshalText(b []byte) error {
	dup, err := Parse(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*d = *dup
	return nil
}
