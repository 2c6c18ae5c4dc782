package coe

import (
	"bufio"
	"errors"
	"image"
	"io"
	"strconv"
	"strings"
)

var (
	errBadHeader = errors.New("coe: invalid header")
	errBadRecord = errors.New("coe: invalid record")
	errNotEnough = errors.New("coe: vector not terminated")
	errTooMuch   = errors.New("coe: data after vector terminator")
	errBadWidth  = errors.New("coe: invalid width")
	errBadSize   = errors.New("coe: vector length is not a multiple of width")
)

type decoder struct {
	s *bufio.Scanner

	vector []RGB444
}

// nextLine returns the next non-blank line with surrounding whitespace
// removed, or io.EOF.
func (d *decoder) nextLine() (string, error) {
	for d.s.Scan() {
		if line := strings.TrimSpace(d.s.Text()); line != "" {
			return line, nil
		}
	}
	if err := d.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (d *decoder) readHeader() error {
	for _, want := range []string{radixLine, vectorLine} {
		line, err := d.nextLine()
		if err != nil {
			if err == io.EOF {
				return errBadHeader
			}
			return err
		}
		if line != want {
			return errBadHeader
		}
	}
	return nil
}

func parseRecord(s string) (RGB444, error) {
	if len(s) == 0 || len(s) > recordDigits {
		return 0, errBadRecord
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil || v > maxValue {
		return 0, errBadRecord
	}
	return RGB444(v), nil
}

func (d *decoder) readVector() error {
	for {
		line, err := d.nextLine()
		if err != nil {
			if err == io.EOF {
				// A bare header is an empty vector
				if len(d.vector) == 0 {
					return nil
				}
				return errNotEnough
			}
			return err
		}

		last := line[len(line)-1]
		if last != separator && last != terminator {
			return errBadRecord
		}

		c, err := parseRecord(strings.TrimSpace(line[:len(line)-1]))
		if err != nil {
			return err
		}
		d.vector = append(d.vector, c)

		if last == terminator {
			break
		}
	}

	if _, err := d.nextLine(); err != io.EOF {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.s = bufio.NewScanner(r)

	if err := d.readHeader(); err != nil {
		return err
	}

	return d.readVector()
}

// DecodeVector reads a COE document from r and returns the RGB444 values in
// the order they appear.
func DecodeVector(r io.Reader) ([]RGB444, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.vector, nil
}

// Decode reads a COE document from r and returns it as an image of the given
// width. The height is inferred from the number of records.
func Decode(r io.Reader, width int) (image.Image, error) {
	if width <= 0 {
		return nil, errBadWidth
	}

	v, err := DecodeVector(r)
	if err != nil {
		return nil, err
	}

	if len(v)%width != 0 {
		return nil, errBadSize
	}

	m := image.NewNRGBA(image.Rect(0, 0, width, len(v)/width))
	for i, c := range v {
		m.SetNRGBA(i%width, i/width, c.nrgba())
	}

	return m, nil
}
