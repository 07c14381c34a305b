package butler

import (
	"context"
	"errors"
	"time"
)

// ErrExposureNotFound is returned by FindExposure when no exposure matches.
var ErrExposureNotFound = errors.New("exposure not found in registry")

// ErrUnknownInstrument is returned when the registry does not serve the
// requested instrument at all.
var ErrUnknownInstrument = errors.New("instrument not known to registry")

// ExposureRecord is one exposure as returned by a butler registry.
type ExposureRecord struct {
	ObsId             string     `json:"obs_id"`
	Id                int64      `json:"id"`
	Instrument        string     `json:"instrument"`
	ObservationType   string     `json:"observation_type"`
	ObservationReason string     `json:"observation_reason"`
	DayObs            int        `json:"day_obs"`
	SeqNum            int        `json:"seq_num"`
	GroupName         string     `json:"group_name"`
	TargetName        string     `json:"target_name"`
	ScienceProgram    string     `json:"science_program"`
	TrackingRa        *float64   `json:"tracking_ra"`
	TrackingDec       *float64   `json:"tracking_dec"`
	SkyAngle          *float64   `json:"sky_angle"`
	TimespanBegin     *time.Time `json:"timespan_begin"`
	TimespanEnd       *time.Time `json:"timespan_end"`
}

// Query is the registry's own query interface: a typed set of exposure
// selection criteria. Minimums are inclusive and maximums exclusive, except
// for the date pair, which selects exposures whose timespan OVERLAPS the
// given interval: MinDate matches timespan_end > MinDate and MaxDate
// matches timespan_begin <= MaxDate, because an exposure spans an interval
// rather than a point in time.
type Query struct {
	Instrument         string
	MinDayObs          *int
	MaxDayObs          *int
	MinSeqNum          *int
	MaxSeqNum          *int
	GroupNames         []string
	ObservationReasons []string
	ObservationTypes   []string
	MinDate            *time.Time
	MaxDate            *time.Time
	OrderBy            []string
	Offset             int
	Limit              int
}

// Registry is a read-only client for one butler exposure registry.
type Registry interface {
	// FindExposure looks up the single exposure with the given obs_id.
	// Returns ErrExposureNotFound if absent and ErrUnknownInstrument if the
	// registry does not serve the instrument.
	FindExposure(ctx context.Context, instrument, obsID string) (*ExposureRecord, error)

	// FindExposures runs a query and returns the matching exposures in the
	// requested order. An unknown instrument yields an empty result, not an
	// error, to match how registries answer bulk queries.
	FindExposures(ctx context.Context, query Query) ([]*ExposureRecord, error)

	// Instruments lists the instrument names this registry serves.
	Instruments(ctx context.Context) ([]string, error)

	// URI identifies the registry, for the configuration endpoint.
	URI() string
}
