package metlink

import "encoding/json"

// Envelope is the top-level object returned by the vehicle positions
// endpoint: a feed header plus an array of vehicle entities.
type Envelope struct {
	Header Header   `json:"header"`
	Entity []Entity `json:"entity"`
}

// Header is the GTFS-RT feed header.
type Header struct {
	GTFSRealtimeVersion string `json:"gtfs_realtime_version"`
	Incrementality      int    `json:"incrementality"`
	Timestamp           int64  `json:"timestamp"`
}

// Entity is one feed entity: an update id and the vehicle observation it
// carries. Entities without a vehicle record are skipped by the pipeline.
type Entity struct {
	ID      string           `json:"id"`
	Vehicle *VehiclePosition `json:"vehicle"`
}

// VehiclePosition is a single vehicle observation.
//
// Optional numeric fields are pointers: the feed omits them rather than
// sending zero, and the enrichment rules need absent and present told apart.
type VehiclePosition struct {
	Trip                Trip               `json:"trip"`
	Position            *Position          `json:"position"`
	Vehicle             *VehicleDescriptor `json:"vehicle"`
	Timestamp           int64              `json:"timestamp"`
	OccupancyStatus     *int               `json:"occupancy_status,omitempty"`
	CurrentStopSequence *int               `json:"current_stop_sequence,omitempty"`
	StopID              string             `json:"stop_id,omitempty"`
	CurrentStatus       *int               `json:"current_status,omitempty"`
}

// Trip is the GTFS-RT trip descriptor.
type Trip struct {
	TripID               string      `json:"trip_id"`
	RouteID              json.Number `json:"route_id"`
	DirectionID          *int        `json:"direction_id,omitempty"`
	StartTime            string      `json:"start_time"`
	StartDate            string      `json:"start_date"`
	ScheduleRelationship int         `json:"schedule_relationship"`
}

// Position is the observed location and kinematics.
type Position struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Bearing   *float64 `json:"bearing,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
}

// VehicleDescriptor identifies the physical vehicle.
type VehicleDescriptor struct {
	ID string `json:"id"`
}

// VehicleID returns the vehicle identity, or "" when the descriptor is
// absent.
func (v *VehiclePosition) VehicleID() string {
	if v == nil || v.Vehicle == nil {
		return ""
	}
	return v.Vehicle.ID
}
