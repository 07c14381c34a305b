package entity

import "time"

// Exposure is one observation as recorded by a butler registry.
// Exposures are read-only for this service: they are queried from the
// registry and returned reshaped, never created or mutated here.
type Exposure struct {
	ObsId             string
	Id                int64
	Instrument        string
	ObservationType   string
	ObservationReason string
	DayObs            int
	SeqNum            int
	GroupName         string
	TargetName        string
	ScienceProgram    string
	// Pointing may be absent for observations that are not on sky.
	TrackingRa  *float64
	TrackingDec *float64
	SkyAngle    *float64
	// The timespan ought always to be known, but is not in some registries.
	TimespanBegin *time.Time
	TimespanEnd   *time.Time
}

// ExposureOrderByFields is the set of field names accepted by the order_by
// parameter of the exposure search: every Exposure field except instrument.
var ExposureOrderByFields = map[string]bool{
	"obs_id":             true,
	"id":                 true,
	"observation_type":   true,
	"observation_reason": true,
	"day_obs":            true,
	"seq_num":            true,
	"group_name":         true,
	"target_name":        true,
	"science_program":    true,
	"tracking_ra":        true,
	"tracking_dec":       true,
	"sky_angle":          true,
	"timespan_begin":     true,
	"timespan_end":       true,
}
