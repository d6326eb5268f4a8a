package bif

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Direction selects which files Batch converts
type Direction int

const (
	// ToPNG converts .bif and .bif.zst files to .png
	ToPNG Direction = iota
	// ToBIF converts .png, .gif, .jpg, .jpeg, .tif and .tiff files to .bif
	ToBIF
)

func (d Direction) String() string {
	switch d {
	case ToPNG:
		return "png"
	case ToBIF:
		return "bif"
	}
	return "unknown"
}

// output returns the converted filename for file, or false if the file
// isn't one that should be converted
func (d Direction) output(file string) (string, bool) {
	lower := strings.ToLower(file)
	switch d {
	case ToPNG:
		for _, ext := range []string{".bif", ".bif" + zstdExt} {
			if strings.HasSuffix(lower, ext) {
				return file[:len(file)-len(ext)] + ".png", true
			}
		}
	case ToBIF:
		switch ext := filepath.Ext(lower); ext {
		case ".png", ".gif", ".jpg", ".jpeg", ".tif", ".tiff":
			return file[:len(file)-len(ext)] + ".bif", true
		}
	}
	return "", false
}

func (c *Converter) findFiles(ctx context.Context, base string, direction Direction) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		// Walk order is lexical so the first source claiming an output wins
		// every time
		claimed := make(map[string]string)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, this includes our own temporary files
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			dst, ok := direction.output(file)
			if !ok {
				return nil
			}

			// Both x.bif and x.bif.zst would write x.png
			if src, ok := claimed[dst]; ok {
				c.logger.Printf("Skipping \"%s\", \"%s\" is already converted from \"%s\"\n", file, dst, src)
				return nil
			}
			claimed[dst] = file

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Converter) fileWorker(ctx context.Context, in <-chan string, direction Direction) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			dst, _ := direction.output(file)

			var err error
			switch direction {
			case ToPNG:
				err = c.BIFToPNG(file, dst)
			case ToBIF:
				err = c.PNGToBIF(file, dst)
			}

			switch {
			case errors.Is(err, ErrExists):
				c.logger.Printf("Skipping \"%s\", \"%s\" already exists\n", file, dst)
			case err != nil:
				errc <- err
				return
			default:
				c.logger.Printf("Converted \"%s\" to \"%s\"\n", file, dst)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch walks path converting every matching file in the given direction.
// Output files are written next to their source. Existing outputs are
// skipped unless Overwrite is set.
func (c *Converter) Batch(path string, direction Direction) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findFiles(ctx, dir, direction)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		errc, err := c.fileWorker(ctx, files, direction)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
