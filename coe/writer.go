package coe

import (
	"bufio"
	"image"
	"io"
)

// Pixel is a single quantized sample. X and Y are relative to the top-left
// corner of the image bounds.
type Pixel struct {
	X, Y  int
	Color RGB444
}

// Scan calls fn for every pixel of m in row-major order, all of row 0 left
// to right, then row 1 and so on. It stops at the first error returned by fn.
func Scan(m image.Image, fn func(Pixel) error) error {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := Pixel{
				X:     x - b.Min.X,
				Y:     y - b.Min.Y,
				Color: RGB444Model.Convert(m.At(x, y)).(RGB444),
			}
			if err := fn(p); err != nil {
				return err
			}
		}
	}
	return nil
}

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

type encoder struct {
	w *bufio.Writer

	remaining int

	// Enough to hold one record including its terminator and newline
	tmp [recordDigits + 2]byte
}

func (e *encoder) writeHeader() error {
	if _, err := e.w.WriteString(radixLine + "\n" + vectorLine + "\n"); err != nil {
		return err
	}
	return nil
}

func (e *encoder) writeRecord(c RGB444) error {
	e.tmp[0] = hexDigits[c>>8&0x0f]
	e.tmp[1] = hexDigits[c>>4&0x0f]
	e.tmp[2] = hexDigits[c&0x0f]

	e.remaining--
	if e.remaining == 0 {
		e.tmp[3] = terminator
	} else {
		e.tmp[3] = separator
	}
	e.tmp[4] = '\n'

	_, err := e.w.Write(e.tmp[:])
	return err
}

func newEncoder(w io.Writer, n int) *encoder {
	return &encoder{
		w:         bufio.NewWriter(w),
		remaining: n,
	}
}

// Encode writes the Image m to w in COE format, one RGB444 record per pixel.
// An empty image produces only the header.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	e := newEncoder(w, b.Dx()*b.Dy())

	if err := e.writeHeader(); err != nil {
		return err
	}

	if err := Scan(m, func(p Pixel) error {
		return e.writeRecord(p.Color)
	}); err != nil {
		return err
	}

	return e.w.Flush()
}

// EncodeVector writes an already quantized vector to w in COE format.
func EncodeVector(w io.Writer, v []RGB444) error {
	e := newEncoder(w, len(v))

	if err := e.writeHeader(); err != nil {
		return err
	}

	for _, c := range v {
		if err := e.writeRecord(c); err != nil {
			return err
		}
	}

	return e.w.Flush()
}
