/*
Package bif is a library for converting BIF text images to and from PNG and
other raster formats.
*/
package bif

import (
	"errors"
	"log"
)

const defaultWorkers = 10

// ErrExists is returned when a conversion would replace an existing file
var ErrExists = errors.New("bif: output file already exists")

type Converter struct {
	logger *log.Logger

	// MaxColors limits the palette of generated BIF files, zero means no
	// limit
	MaxColors int

	// Overwrite allows existing output files to be replaced
	Overwrite bool

	// Strict makes a BIF data block without [/data] an error
	Strict bool

	// Workers is the number of concurrent conversions run by Batch
	Workers int
}

func New(logger *log.Logger) *Converter {
	return &Converter{
		logger:  logger,
		Workers: defaultWorkers,
	}
}
