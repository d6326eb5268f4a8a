package image

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader         = errors.New("bif: malformed header")
	ErrInvalidDimensions       = errors.New("bif: invalid dimensions")
	ErrMissingColorBlock       = errors.New("bif: missing [colors] block")
	ErrUnterminatedColorBlock  = errors.New("bif: color block should end with [/colors]")
	ErrInvalidColorName        = errors.New("bif: invalid color name")
	ErrInvalidColorChannel     = errors.New("bif: invalid color channel")
	ErrDuplicateColorName      = errors.New("bif: color defined twice")
	ErrMissingDataBlock        = errors.New("bif: missing [data] block")
	ErrRepeatBeforeAnyColor    = errors.New("bif: repeat operator used before any other color")
	ErrUndefinedColorReference = errors.New("bif: used undefined color")
	ErrUnterminatedDataBlock   = errors.New("bif: data block should end with [/data]")
)

// Section identifies the part of a BIF file being parsed
type Section int

const (
	SectionHeader Section = iota
	SectionColors
	SectionData
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionColors:
		return "colors"
	case SectionData:
		return "data"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// SyntaxError records the position and offending token of a parse failure.
// Token is empty when the input ended early.
type SyntaxError struct {
	Section Section
	Token   string
	Line    int
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at end of input in %v section", e.Err, e.Section)
	}
	return fmt.Sprintf("%v: %q at line %d in %v section", e.Err, e.Token, e.Line, e.Section)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
