package bmp2coe

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/eddiexyang/bmp2coe/coe"
	_ "golang.org/x/image/bmp"
)

// Ext is the file extension used for COE files.
const Ext = ".coe"

// OutputPath returns the COE filename for the given image, the same path
// with its extension replaced.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + Ext
}

func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return image.Decode(f)
}

func encodeFile(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := coe.Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Convert reads the image at input and writes it to output in COE format,
// overwriting any existing file. Failure to read the image returns a
// *DecodeError and failure to write the result returns a *WriteError, in
// which case output may be left truncated.
func (c *Converter) Convert(input, output string) error {
	m, format, err := decodeFile(input)
	if err != nil {
		return &DecodeError{Path: input, Err: err}
	}

	b := m.Bounds()
	c.logger.Debug("decoded image", "file", input, "format", format, "width", b.Dx(), "height", b.Dy())

	if err := encodeFile(output, m); err != nil {
		return &WriteError{Path: output, Err: err}
	}

	c.logger.Info("wrote coe", "file", output, "records", b.Dx()*b.Dy())

	return nil
}
