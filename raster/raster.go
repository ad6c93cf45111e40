package raster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		return FormatImage, nil
	case ".hgt", ".bin":
		return FormatHeightmap, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the first band of the raster at path.
func Load(path string) (*Layer, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Decode reads one layer from r in the given format.
func Decode(r io.Reader, format Format) (*Layer, error) {
	var (
		l   *Layer
		err error
	)
	switch format {
	case FormatImage:
		l, err = decodeImage(r)
	case FormatHeightmap:
		l, err = decodeHeightmap(r)
	case FormatJSON:
		l, err = decodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}
