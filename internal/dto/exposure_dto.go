package dto

import "time"

type FindExposuresRequest struct {
	// Registry selects which configured registry to search, starting at 1.
	Registry           int      `query:"registry"`
	Instrument         string   `query:"instrument" validate:"required"`
	MinDayObs          *int     `query:"min_day_obs"`
	MaxDayObs          *int     `query:"max_day_obs"`
	MinSeqNum          *int     `query:"min_seq_num"`
	MaxSeqNum          *int     `query:"max_seq_num"`
	GroupNames         []string `query:"group_names"`
	ObservationReasons []string `query:"observation_reasons"`
	ObservationTypes   []string `query:"observation_types"`
	MinDate            *string  `query:"min_date"`
	MaxDate            *string  `query:"max_date"`
	OrderBy            []string `query:"order_by"`
	Offset             int      `query:"offset"`
	Limit              int      `query:"limit"`
}

func NewFindExposuresRequest() FindExposuresRequest {
	return FindExposuresRequest{
		Registry: 1,
		Offset:   0,
		Limit:    50,
	}
}

type ExposureResponse struct {
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
