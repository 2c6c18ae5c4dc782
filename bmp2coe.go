/*
Package bmp2coe converts bitmap images into COE files for initializing FPGA
block memory, one 12-bit RGB444 record per pixel.
*/
package bmp2coe

import (
	"io"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
)

// Converter turns images into COE files.
type Converter struct {
	logger *slog.Logger
}

// New returns a Converter logging to logger. A nil logger discards
// everything.
func New(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = NewLogger(io.Discard, false)
	}
	return &Converter{
		logger: logger,
	}
}

// NewLogger returns a logger writing human-readable lines to w. Debug output
// is only included if verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
}
