package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/metlink-to-cot/cot"
	"github.com/theoremus-urban-solutions/metlink-to-cot/metlink"
)

// FeedSource supplies one feed envelope per invocation.
type FeedSource interface {
	Fetch(ctx context.Context) (*metlink.Envelope, error)
}

// Options carries the pipeline settings that are not collaborators.
type Options struct {
	// Network is the code prefixed to every feature id, e.g. "WLG".
	Network string

	// Per-category visibility. A suppressed category's records are dropped
	// before deduplication.
	ShowBuses   bool
	ShowTrains  bool
	ShowFerries bool
}

// Stats summarizes one run for logging and tests.
type Stats struct {
	Received int // entities in the envelope
	Valid    int // after per-record validation and visibility filtering
	Emitted  int // features in the submitted collection
}

// Pipeline is the fetch → validate → classify → dedup → enrich → emit
// conversion. One Run per invocation; no state survives it.
type Pipeline struct {
	source     FeedSource
	classifier Classifier
	submitter  Submitter
	network    string
	visible    map[cot.Category]bool
}

// New assembles a pipeline from its collaborators.
func New(source FeedSource, classifier Classifier, submitter Submitter, opts Options) *Pipeline {
	network := opts.Network
	if network == "" {
		network = "WLG"
	}
	return &Pipeline{
		source:     source,
		classifier: classifier,
		submitter:  submitter,
		network:    network,
		visible: map[cot.Category]bool{
			cot.CategoryBus:   opts.ShowBuses,
			cot.CategoryTrain: opts.ShowTrains,
			cot.CategoryFerry: opts.ShowFerries,
		},
	}
}

// Run executes the pipeline once. Upstream failures are consumed here: they
// are logged and an empty collection is still submitted, so a scheduled
// invocation never leaves the map in a failed state. The only error
// returned is the submitter's.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	env, err := p.source.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Vehicle feed unavailable, submitting empty collection")
		env = &metlink.Envelope{}
	}
	stats.Received = len(env.Entity)

	store := newFeatureStore()
	for _, entity := range env.Entity {
		// Per-record filter: a malformed entity is skipped, never fatal.
		if entity.Vehicle == nil || entity.Vehicle.Position == nil {
			continue
		}
		category, routeID := p.classifier.Classify(entity.Vehicle.Trip)
		if !p.visible[category] {
			continue
		}
		stats.Valid++
		store.put(p.buildFeature(entity, category, routeID))
	}

	fc := cot.NewFeatureCollection(store.drain())
	stats.Emitted = store.len()

	if err := p.submitter.Submit(ctx, fc); err != nil {
		return stats, fmt.Errorf("submit features: %w", err)
	}

	log.Info().
		Int("received", stats.Received).
		Int("valid", stats.Valid).
		Int("submitted", stats.Emitted).
		Msg("Vehicle positions converted")
	return stats, nil
}

func (p *Pipeline) buildFeature(entity metlink.Entity, category cot.Category, routeID string) cot.Feature {
	vp := entity.Vehicle
	style := category.Style()
	vehicleID := vp.VehicleID()

	// Observation time and start time are fixed to the same instant.
	ts := time.Unix(vp.Timestamp, 0).UTC().Format(time.RFC3339)

	speed := vp.Position.Speed
	bearing := vp.Position.Bearing

	return cot.Feature{
		ID:   fmt.Sprintf("%s-%s-%s", p.network, style.IDPrefix, vehicleID),
		Type: "Feature",
		Properties: cot.Properties{
			Callsign:    fmt.Sprintf("Route %s - %s %s", routeID, style.Name, vehicleID),
			CoTType:     style.CoTType,
			Time:        ts,
			Start:       ts,
			Speed:       Kinematic(speed),
			Course:      Kinematic(bearing),
			MarkerColor: style.MarkerColor,
			Icon:        style.Icon,
			Remarks: BuildRemarks(style.Name, vehicleID, routeID, vp.Trip.TripID,
				vp.Trip.DirectionID, vp.Trip.StartTime, vp.OccupancyStatus, speed),
			Metadata: buildMetadata(entity, category, routeID),
		},
		Geometry: cot.NewPoint(vp.Position.Longitude, vp.Position.Latitude),
	}
}
