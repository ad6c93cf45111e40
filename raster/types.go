package raster

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates an extension or Format no decoder handles.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")

	// ErrEmpty indicates a raster with no samples.
	ErrEmpty = errors.New("raster: empty raster")

	// ErrShape indicates the sample count does not match width×height, or
	// JSON rows of unequal length.
	ErrShape = errors.New("raster: sample count does not match dimensions")

	// ErrTruncated indicates a binary heightmap ended early.
	ErrTruncated = errors.New("raster: truncated heightmap")
)

// Format identifies a decoder.
type Format string

const (
	// FormatImage covers PNG, JPEG, GIF and TIFF.
	FormatImage Format = "image"
	// FormatHeightmap is the little-endian int16 layout.
	FormatHeightmap Format = "heightmap"
	// FormatJSON is the flat or row JSON layout.
	FormatJSON Format = "json"
)

// Layer is one band of samples.
type Layer struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Values []float64 `json:"values"`
}

// At returns the sample at (x, y). The coordinates must be in range.
func (l *Layer) At(x, y int) float64 {
	return l.Values[y*l.Width+x]
}

// Stats summarises a layer. NaN samples are skipped; Count is the number of
// samples that were not NaN.
type Stats struct {
	Min, Max, Mean float64
	Count          int
}

// Stats computes Min, Max and Mean in one pass. A layer of only NaN yields
// NaN for all three.
func (l *Layer) Stats() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range l.Values {
		if math.IsNaN(v) {
			continue
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
		s.Count++
	}
	if s.Count == 0 {
		return Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}
	s.Mean = sum / float64(s.Count)
	return s
}

func (l *Layer) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return ErrEmpty
	}
	if len(l.Values) != l.Width*l.Height {
		return ErrShape
	}
	return nil
}
