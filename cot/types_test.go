package cot

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFeatureCollection_MarshalShape(t *testing.T) {
	fc := NewFeatureCollection([]Feature{
		{
			ID:   "WLG-MetlinkBus-3301",
			Type: "Feature",
			Properties: Properties{
				Callsign: "Route 22 - Bus 3301",
				CoTType:  "a-f-G-E-V-C",
				Speed:    UnknownValue,
				Course:   UnknownValue,
			},
			Geometry: NewPoint(174.78, -41.29),
		},
	})

	raw, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(raw)
	if !strings.Contains(s, `"type":"FeatureCollection"`) {
		t.Error("missing FeatureCollection type tag")
	}
	// Longitude comes first in GeoJSON coordinates.
	if !strings.Contains(s, `"coordinates":[174.78,-41.29]`) {
		t.Errorf("coordinates not lon-first: %s", s)
	}
	if !strings.Contains(s, `"marker-color"`) {
		t.Error("marker-color key must be hyphenated")
	}
}

func TestNewFeatureCollection_EmptyIsValid(t *testing.T) {
	raw, err := json.Marshal(NewFeatureCollection(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"features":[]`) {
		t.Errorf("empty collection must carry an empty array, not null: %s", raw)
	}
}

func TestCategoryStyles(t *testing.T) {
	cases := []struct {
		cat     Category
		name    string
		prefix  string
		cotType string
	}{
		{CategoryBus, "Bus", "MetlinkBus", "a-f-G-E-V-C"},
		{CategoryTrain, "Train", "MetlinkTrain", "a-f-G-E-V"},
		{CategoryFerry, "Ferry", "MetlinkFerry", "a-f-S-X-M"},
	}
	for _, tc := range cases {
		style := tc.cat.Style()
		if style.Name != tc.name {
			t.Errorf("%v name = %q", tc.cat, style.Name)
		}
		if style.IDPrefix != tc.prefix {
			t.Errorf("%v prefix = %q", tc.cat, style.IDPrefix)
		}
		if style.CoTType != tc.cotType {
			t.Errorf("%v CoT type = %q", tc.cat, style.CoTType)
		}
		if style.MarkerColor == "" || style.Icon == "" {
			t.Errorf("%v is missing presentation attributes", tc.cat)
		}
	}
}
