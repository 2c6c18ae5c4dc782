package coe

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = radixLine + "\n" + vectorLine + "\n"

func TestDecodeVector(t *testing.T) {
	tables := []struct {
		name  string
		input string
		want  []RGB444
		err   error
	}{
		{"single", header + "f01;\n", []RGB444{0xf01}, nil},
		{"several", header + "110,\n000,\nfff;\n", []RGB444{0x110, 0x000, 0xfff}, nil},
		{"empty", header, nil, nil},
		{"crlf", strings.ReplaceAll(header+"abc,\n007;\n", "\n", "\r\n"), []RGB444{0xabc, 0x007}, nil},
		{"uppercase", header + "ABC;\n", []RGB444{0xabc}, nil},
		{"short record", header + "7;\n", []RGB444{0x007}, nil},
		{"trailing blank lines", header + "001;\n\n\n", []RGB444{0x001}, nil},
		{"no final newline", header + "001;", []RGB444{0x001}, nil},
		{"missing header", "f01;\n", nil, errBadHeader},
		{"wrong radix", "memory_initialization_radix=2;\n" + vectorLine + "\nf01;\n", nil, errBadHeader},
		{"truncated header", radixLine + "\n", nil, errBadHeader},
		{"unterminated", header + "f01,\n", nil, errNotEnough},
		{"no terminator", header + "f01\n", nil, errBadRecord},
		{"too wide", header + "1000;\n", nil, errBadRecord},
		{"not hex", header + "xyz;\n", nil, errBadRecord},
		{"empty record", header + ";\n", nil, errBadRecord},
		{"signed", header + "+1;\n", nil, errBadRecord},
		{"data after terminator", header + "000;\n001;\n", nil, errTooMuch},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			v, err := DecodeVector(strings.NewReader(table.input))
			if table.err != nil {
				assert.Equal(t, table.err, err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, table.want, v)
		})
	}
}

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(header+"f00,\n0f0,\n00f,\nfff;\n"), 2)
	require.Nil(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, m.At(0, 0))
	assert.Equal(t, color.NRGBA{0x00, 0xff, 0x00, 0xff}, m.At(1, 0))
	assert.Equal(t, color.NRGBA{0x00, 0x00, 0xff, 0xff}, m.At(0, 1))
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, m.At(1, 1))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(header+"000;\n"), 0)
	assert.Equal(t, errBadWidth, err)

	_, err = Decode(strings.NewReader(header+"000,\n000,\n000;\n"), 2)
	assert.Equal(t, errBadSize, err)

	_, err = Decode(strings.NewReader("garbage"), 2)
	assert.Equal(t, errBadHeader, err)
}

func TestRoundTrip(t *testing.T) {
	const w, h = 16, 9
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x << 4), uint8(y * 29), uint8(x ^ y*7), 0xff})
		}
	}

	first := new(bytes.Buffer)
	require.Nil(t, Encode(first, m))

	decoded, err := Decode(bytes.NewReader(first.Bytes()), w)
	require.Nil(t, err)
	assert.Equal(t, m.Bounds(), decoded.Bounds())

	second := new(bytes.Buffer)
	require.Nil(t, Encode(second, decoded))
	assert.Equal(t, first.String(), second.String())
}
