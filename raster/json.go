package raster

import (
	"fmt"
	"io"
	"os"

	"github.com/cybergodev/json"
)

// jsonLayer accepts both the flat and the row form.
type jsonLayer struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Values []float64   `json:"values"`
	Rows   [][]float64 `json:"rows"`
}

func decodeJSON(r io.Reader) (*Layer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("raster: read json: %w", err)
	}
	var jl jsonLayer
	if err := json.Unmarshal(data, &jl); err != nil {
		return nil, fmt.Errorf("raster: decode json: %w", err)
	}

	if len(jl.Rows) == 0 {
		return &Layer{Width: jl.Width, Height: jl.Height, Values: jl.Values}, nil
	}

	w := len(jl.Rows[0])
	l := &Layer{Width: w, Height: len(jl.Rows), Values: make([]float64, 0, w*len(jl.Rows))}
	for y, row := range jl.Rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, y, len(row), w)
		}
		l.Values = append(l.Values, row...)
	}
	return l, nil
}

// EncodeJSON writes l in the flat JSON form.
func EncodeJSON(w io.Writer, l *Layer) error {
	if err := l.validate(); err != nil {
		return err
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("raster: encode json: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// SaveJSON writes l to path in the flat JSON form.
func SaveJSON(path string, l *Layer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := EncodeJSON(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
