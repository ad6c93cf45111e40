package raster

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// decodeHeightmap reads the int16 heightmap layout: width, height, then
// width*height samples, all little-endian.
func decodeHeightmap(r io.Reader) (*Layer, error) {
	br := bufio.NewReader(r)
	var dims [2]int16
	if err := binary.Read(br, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}
	w, h := int(dims[0]), int(dims[1])
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, w, h)
	}

	samples := make([]int16, w*h)
	if err := binary.Read(br, binary.LittleEndian, samples); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d samples", ErrTruncated, w*h)
		}
		return nil, fmt.Errorf("raster: read heightmap: %w", err)
	}

	l := &Layer{Width: w, Height: h, Values: make([]float64, len(samples))}
	for i, s := range samples {
		l.Values[i] = float64(s)
	}
	return l, nil
}

// EncodeHeightmap writes l in the heightmap layout. Samples are truncated to
// int16.
func EncodeHeightmap(w io.Writer, l *Layer) error {
	if err := l.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	out := make([]int16, 2+len(l.Values))
	out[0], out[1] = int16(l.Width), int16(l.Height)
	for i, v := range l.Values {
		out[2+i] = int16(v)
	}
	if err := binary.Write(bw, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("raster: write heightmap: %w", err)
	}
	return bw.Flush()
}
