package converter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/metlink-to-cot/cot"
	"github.com/theoremus-urban-solutions/metlink-to-cot/metlink"
)

// Classification policies. Both are deterministic, stateless functions of
// the trip descriptor; which one is active is a startup choice.
const (
	PolicyTripPrefix = "trip-prefix"
	PolicyRouteID    = "route-id"
)

// Classifier assigns a vehicle observation to exactly one category and
// decides which route id the user is shown.
type Classifier interface {
	Classify(trip metlink.Trip) (cot.Category, string)
}

// NewClassifier builds the classifier for a policy name.
func NewClassifier(policy string) (Classifier, error) {
	switch policy {
	case PolicyTripPrefix:
		return TripPrefixClassifier{}, nil
	case PolicyRouteID, "":
		return RouteIDClassifier{}, nil
	default:
		return nil, fmt.Errorf("unknown classification policy %q", policy)
	}
}

// railCodes are the Wellington rail line codes found at the front of rail
// trip ids.
var railCodes = map[string]bool{
	"HVL": true, // Hutt Valley line
	"JVL": true, // Johnsonville line
	"KPL": true, // Kapiti line
	"MEL": true, // Melling line
	"WRL": true, // Wairarapa line
	"MUL": true,
}

// TripPrefixClassifier inspects the trip id: the QDF code marks the harbour
// ferry, the rail line codes mark trains, everything else is a bus. The
// displayed route id is the trip id up to the first "__" separator.
type TripPrefixClassifier struct{}

func (TripPrefixClassifier) Classify(trip metlink.Trip) (cot.Category, string) {
	display := trip.TripID
	if i := strings.Index(display, "__"); i >= 0 {
		display = display[:i]
	}
	switch code := leadingAlpha(display); {
	case code == "QDF":
		return cot.CategoryFerry, display
	case railCodes[code]:
		return cot.CategoryTrain, display
	default:
		return cot.CategoryBus, display
	}
}

// RouteIDClassifier uses the numeric route id: Wellington's rail routes are
// 2, 5 and 6; everything else is a bus. No ferry category under this
// policy. The displayed route id is the raw field.
type RouteIDClassifier struct{}

func (RouteIDClassifier) Classify(trip metlink.Trip) (cot.Category, string) {
	switch trip.RouteIDInt() {
	case 2, 5, 6:
		return cot.CategoryTrain, trip.RouteIDString()
	default:
		return cot.CategoryBus, trip.RouteIDString()
	}
}

// leadingAlpha returns the run of ASCII letters at the front of s.
func leadingAlpha(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return s[:i]
		}
	}
	return s
}
