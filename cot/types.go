package cot

// UnknownValue is the Cursor-on-Target sentinel for "value not known".
// Kinematics that the feed did not report carry this marker, never zero and
// never null.
const UnknownValue = 9999999.0

// FeatureCollection is the sole artifact of a pipeline run: an ordered set
// of point features handed to the map backend in one submission.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one tracked vehicle as a CoT-style GeoJSON point feature.
type Feature struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Point      `json:"geometry"`
}

// Properties carries identity, classification, kinematics and descriptive
// metadata for a feature.
type Properties struct {
	Callsign    string         `json:"callsign"`
	CoTType     string         `json:"type"`
	Time        string         `json:"time"`
	Start       string         `json:"start"`
	Speed       float64        `json:"speed"`
	Course      float64        `json:"course"`
	MarkerColor string         `json:"marker-color"`
	Icon        string         `json:"icon"`
	Remarks     string         `json:"remarks"`
	Metadata    map[string]any `json:"metadata"`
}

// Point is a GeoJSON point geometry. Coordinates are longitude first.
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewPoint builds a point geometry from a longitude and latitude.
func NewPoint(lon, lat float64) Point {
	return Point{Type: "Point", Coordinates: [2]float64{lon, lat}}
}

// NewFeatureCollection wraps features into a collection. A nil slice
// becomes an empty (but present) features array, which is the valid shape
// for an empty run.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
