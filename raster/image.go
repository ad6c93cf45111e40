package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	_ "golang.org/x/image/tiff" // register TIFF
)

// decodeImage reads band 1 of any registered image format.
func decodeImage(r io.Reader) (*Layer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode image: %w", err)
	}
	return fromImage(img), nil
}

// fromImage extracts band 1. Gray images keep their full depth; colour
// images contribute the 8-bit red channel.
func fromImage(img image.Image) *Layer {
	b := img.Bounds()
	l := &Layer{Width: b.Dx(), Height: b.Dy(), Values: make([]float64, 0, b.Dx()*b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v float64
			switch im := img.(type) {
			case *image.Gray:
				v = float64(im.GrayAt(x, y).Y)
			case *image.Gray16:
				v = float64(im.Gray16At(x, y).Y)
			default:
				red, _, _, _ := img.At(x, y).RGBA()
				v = float64(red >> 8)
			}
			l.Values = append(l.Values, v)
		}
	}
	return l
}
