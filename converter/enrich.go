package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/metlink-to-cot/cot"
	"github.com/theoremus-urban-solutions/metlink-to-cot/metlink"
)

// occupancyText maps the GTFS-RT occupancy_status code to display text.
// Codes outside 0-6, and absent codes, read "Unknown".
var occupancyText = map[int]string{
	0: "Empty",
	1: "Many seats available",
	2: "Few seats available",
	3: "Standing room only",
	4: "Crushed standing room only",
	5: "Full",
	6: "Not accepting passengers",
}

// TranslateOccupancy renders an occupancy code for humans.
func TranslateOccupancy(code *int) string {
	if code != nil {
		if s, ok := occupancyText[*code]; ok {
			return s
		}
	}
	return "Unknown"
}

// Kinematic returns the raw value when it is present and non-zero, else the
// CoT unknown sentinel. The feed omits speed and bearing rather than
// sending zero, so zero is read as "not provided".
func Kinematic(v *float64) float64 {
	if v != nil && *v != 0 {
		return *v
	}
	return cot.UnknownValue
}

// BuildRemarks assembles the free-text remarks block: one "Label: value"
// line per field, newline-joined, fixed order. Occupancy and Speed lines
// appear only when the feed provided the field.
func BuildRemarks(vehicleType, vehicleID, routeID, tripID string, direction *int, startTime string, occupancy *int, speed *float64) string {
	dir := "Unknown"
	if direction != nil {
		dir = strconv.Itoa(*direction)
	}
	lines := []string{
		"Vehicle Type: " + vehicleType,
		"Vehicle ID: " + vehicleID,
		"Route ID: " + routeID,
		"Trip ID: " + tripID,
		"Direction: " + dir,
		"Start Time: " + startTime,
	}
	if occupancy != nil {
		lines = append(lines, "Occupancy: "+TranslateOccupancy(occupancy))
	}
	if speed != nil {
		lines = append(lines, fmt.Sprintf("Speed: %.1f m/s", *speed))
	}
	return strings.Join(lines, "\n")
}

// buildMetadata produces the structured metadata bag: every field of the
// raw entity plus the derived identity fields.
func buildMetadata(entity metlink.Entity, category cot.Category, routeID string) map[string]any {
	bag := map[string]any{}
	if raw, err := json.Marshal(entity); err == nil {
		_ = json.Unmarshal(raw, &bag)
	}
	bag["vehicleType"] = category.String()
	bag["routeId"] = routeID
	if entity.Vehicle != nil && entity.Vehicle.Trip.DirectionID != nil {
		bag["directionId"] = *entity.Vehicle.Trip.DirectionID
	} else {
		bag["directionId"] = nil
	}
	bag["vehicleId"] = entity.Vehicle.VehicleID()
	var occ *int
	if entity.Vehicle != nil {
		occ = entity.Vehicle.OccupancyStatus
	}
	bag["occupancy"] = TranslateOccupancy(occ)
	return bag
}
