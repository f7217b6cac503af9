package config

// DefaultFeedURL is the Metlink open-data vehicle positions endpoint.
const DefaultFeedURL = "https://api.opendata.metlink.org.nz/v1/gtfs-rt/vehiclepositions"

// DefaultNetwork is the network code prefixed to every feature id.
const DefaultNetwork = "WLG"

// FeedConfig describes the upstream GTFS-RT vehicle positions feed.
type FeedConfig struct {
	URL    string `yaml:"url" validate:"omitempty,url"`
	Format string `yaml:"format" validate:"omitempty,oneof=json protobuf"`
	APIKey string `yaml:"apiKey"`
}

// ClassificationConfig selects the vehicle classification policy and which
// categories are forwarded to the map at all.
type ClassificationConfig struct {
	Policy string `yaml:"policy" validate:"omitempty,oneof=trip-prefix route-id"`

	// Visibility switches default to true when omitted.
	ShowBuses   *bool `yaml:"showBuses"`
	ShowTrains  *bool `yaml:"showTrains"`
	ShowFerries *bool `yaml:"showFerries"`
}

// SubmitConfig describes the downstream map endpoint the feature collection
// is handed to. An empty URL means the collection is printed instead.
type SubmitConfig struct {
	URL string `yaml:"url" validate:"omitempty,url"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Network        string               `yaml:"network"`
	Feed           FeedConfig           `yaml:"feed"`
	Classification ClassificationConfig `yaml:"classification"`
	Submit         SubmitConfig         `yaml:"submit"`
	Debug          bool                 `yaml:"debug"`
}
