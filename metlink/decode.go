package metlink

import (
	"encoding/json"
	"errors"
	"strconv"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// DecodeJSON parses a JSON feed body into an Envelope. The body must be an
// object with an entity array; "entity": [] is a valid empty feed, an
// absent or null entity field is not.
func DecodeJSON(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &UpstreamError{Reason: "decode", Err: err}
	}
	if env.Entity == nil {
		return nil, &UpstreamError{Reason: "envelope", Err: errors.New("missing entity array")}
	}
	return &env, nil
}

// DecodeProtobuf parses a binary GTFS-RT FeedMessage into the same Envelope
// shape the JSON path produces.
func DecodeProtobuf(body []byte) (*Envelope, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(body, &fm); err != nil {
		return nil, &UpstreamError{Reason: "decode", Err: err}
	}

	env := &Envelope{Entity: []Entity{}}
	if fm.Header != nil {
		if fm.Header.GtfsRealtimeVersion != nil {
			env.Header.GTFSRealtimeVersion = *fm.Header.GtfsRealtimeVersion
		}
		if fm.Header.Timestamp != nil {
			env.Header.Timestamp = int64(*fm.Header.Timestamp)
		}
	}

	for _, e := range fm.Entity {
		if e == nil {
			continue
		}
		ent := Entity{}
		if e.Id != nil {
			ent.ID = *e.Id
		}
		if e.Vehicle != nil {
			ent.Vehicle = vehicleFromProto(e.Vehicle)
		}
		env.Entity = append(env.Entity, ent)
	}
	return env, nil
}

func vehicleFromProto(vp *gtfsrtpb.VehiclePosition) *VehiclePosition {
	out := &VehiclePosition{}
	if vp.Trip != nil {
		t := vp.Trip
		if t.TripId != nil {
			out.Trip.TripID = *t.TripId
		}
		if t.RouteId != nil {
			out.Trip.RouteID = json.Number(*t.RouteId)
		}
		if t.DirectionId != nil {
			d := int(*t.DirectionId)
			out.Trip.DirectionID = &d
		}
		if t.StartTime != nil {
			out.Trip.StartTime = *t.StartTime
		}
		if t.StartDate != nil {
			out.Trip.StartDate = *t.StartDate
		}
		if t.ScheduleRelationship != nil {
			out.Trip.ScheduleRelationship = int(*t.ScheduleRelationship)
		}
	}
	if vp.Position != nil {
		p := vp.Position
		pos := &Position{}
		if p.Latitude != nil {
			pos.Latitude = float64(*p.Latitude)
		}
		if p.Longitude != nil {
			pos.Longitude = float64(*p.Longitude)
		}
		if p.Bearing != nil {
			b := float64(*p.Bearing)
			pos.Bearing = &b
		}
		if p.Speed != nil {
			s := float64(*p.Speed)
			pos.Speed = &s
		}
		out.Position = pos
	}
	if vp.Vehicle != nil && vp.Vehicle.Id != nil {
		out.Vehicle = &VehicleDescriptor{ID: *vp.Vehicle.Id}
	}
	if vp.Timestamp != nil {
		out.Timestamp = int64(*vp.Timestamp)
	}
	if vp.OccupancyStatus != nil {
		o := int(*vp.OccupancyStatus)
		out.OccupancyStatus = &o
	}
	if vp.CurrentStopSequence != nil {
		s := int(*vp.CurrentStopSequence)
		out.CurrentStopSequence = &s
	}
	if vp.StopId != nil {
		out.StopID = *vp.StopId
	}
	if vp.CurrentStatus != nil {
		c := int(*vp.CurrentStatus)
		out.CurrentStatus = &c
	}
	return out
}

// RouteIDInt parses the numeric route id, returning -1 when the field is
// empty or not a number.
func (t Trip) RouteIDInt() int64 {
	n, err := strconv.ParseInt(t.RouteID.String(), 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// RouteIDString renders the raw route id field for display.
func (t Trip) RouteIDString() string {
	return t.RouteID.String()
}
