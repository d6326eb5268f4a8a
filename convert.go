package bif

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	bifimage "github.com/bodgit/bif/image"
	"github.com/klauspost/compress/zstd"
	_ "golang.org/x/image/tiff"
)

const zstdExt = ".zst"

func isCompressed(file string) bool {
	return strings.EqualFold(filepath.Ext(file), zstdExt)
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

func openFile(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	if !isCompressed(file) {
		return f, nil
	}

	zr, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &zstdReadCloser{zr, f}, nil
}

// writeFile calls fn with a temporary file next to file which is renamed
// into place only if fn succeeds
func (c *Converter) writeFile(file string, fn func(io.Writer) error) (err error) {
	if !c.Overwrite {
		if _, err := os.Stat(file); err == nil {
			return fmt.Errorf("%s: %w", file, ErrExists)
		}
	}

	f, err := ioutil.TempFile(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if isCompressed(file) {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return err
		}
		if err := fn(zw); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	} else if err := fn(f); err != nil {
		return err
	}

	if err = f.Chmod(0644); err != nil {
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), file)
}

// BIFToPNG converts the BIF file src to the PNG file dst. A src name ending
// in .zst is read as zstd compressed BIF.
func (c *Converter) BIFToPNG(src, dst string) error {
	r, err := openFile(src)
	if err != nil {
		return err
	}
	defer r.Close()

	dec := bifimage.Decoder{
		Logger: c.logger,
		Strict: c.Strict,
	}

	d, err := dec.Parse(r)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	c.logger.Printf("Parsed \"%s\", %d by %d pixels with %d colors\n", src, d.Width(), d.Height(), d.Palette().Len())

	return c.writeFile(dst, func(w io.Writer) error {
		return png.Encode(w, d.Image())
	})
}

// PNGToBIF converts the image file src to the BIF file dst. Besides PNG,
// GIF, JPEG and TIFF images are accepted. A dst name ending in .zst is
// written zstd compressed.
func (c *Converter) PNGToBIF(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	if c.MaxColors > 0 {
		m = bifimage.Reduce(m, c.MaxColors)
	}

	d, err := bifimage.FromImage(m)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	c.logger.Printf("Read %s \"%s\", %d by %d pixels with %d colors\n", format, src, d.Width(), d.Height(), d.Palette().Len())

	return c.writeFile(dst, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	})
}
