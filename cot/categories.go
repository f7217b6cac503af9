package cot

// Category is the semantic class of a tracked vehicle.
type Category int

const (
	CategoryBus Category = iota
	CategoryTrain
	CategoryFerry
)

// Style is the fixed presentation for a category: the CoT type code
// (affiliation / battle dimension / type), the map icon, the marker color
// and the stable prefix used to build feature ids.
type Style struct {
	Name        string
	IDPrefix    string
	CoTType     string
	MarkerColor string
	Icon        string
}

var categoryStyles = map[Category]Style{
	CategoryBus: {
		Name:        "Bus",
		IDPrefix:    "MetlinkBus",
		CoTType:     "a-f-G-E-V-C", // civilian ground vehicle
		MarkerColor: "#2ECC71",
		Icon:        "fa-bus",
	},
	CategoryTrain: {
		Name:        "Train",
		IDPrefix:    "MetlinkTrain",
		CoTType:     "a-f-G-E-V", // ground vehicle
		MarkerColor: "#9B59B6",
		Icon:        "fa-train",
	},
	CategoryFerry: {
		Name:        "Ferry",
		IDPrefix:    "MetlinkFerry",
		CoTType:     "a-f-S-X-M", // surface vehicle
		MarkerColor: "#1ABC9C",
		Icon:        "fa-ship",
	},
}

// Style returns the presentation table entry for the category.
func (c Category) Style() Style { return categoryStyles[c] }

func (c Category) String() string { return categoryStyles[c].Name }
