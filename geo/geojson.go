package geo

import (
	"fmt"
	"io"

	"github.com/cybergodev/json"
)

// Geometry is a GeoJSON LineString.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Feature is a GeoJSON Feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// LineFeature builds a LineString feature through points. props may be nil.
func LineFeature(points []Point, props map[string]any) Feature {
	coords := make([][2]float64, len(points))
	for i, p := range points {
		coords[i] = [2]float64{p.X, p.Y}
	}
	if props == nil {
		props = map[string]any{}
	}
	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "LineString", Coordinates: coords},
		Properties: props,
	}
}

// EncodeFeatures renders the features as an indented FeatureCollection.
func EncodeFeatures(features ...Feature) ([]byte, error) {
	if features == nil {
		features = []Feature{}
	}
	data, err := json.MarshalIndent(FeatureCollection{Type: "FeatureCollection", Features: features}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("geo: encode features: %w", err)
	}
	return data, nil
}

// WriteFeatures writes EncodeFeatures output followed by a newline.
func WriteFeatures(w io.Writer, features ...Feature) error {
	data, err := EncodeFeatures(features...)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("geo: write features: %w", err)
	}
	return nil
}

// DecodeFeatures parses a FeatureCollection.
func DecodeFeatures(data []byte) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("geo: decode features: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("geo: decode features: type %q", fc.Type)
	}
	return &fc, nil
}
