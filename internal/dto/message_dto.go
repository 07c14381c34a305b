package dto

import (
	"time"

	"github.com/google/uuid"
)

// TriState is a three-valued filter: "either" omits the predicate entirely.
type TriState string

const (
	TriStateEither TriState = "either"
	TriStateTrue   TriState = "true"
	TriStateFalse  TriState = "false"
)

func (t TriState) Valid() bool {
	switch t {
	case TriStateEither, TriStateTrue, TriStateFalse:
		return true
	}
	return false
}

// Bool returns the boolean value and whether a predicate applies at all.
func (t TriState) Bool() (value bool, present bool) {
	switch t {
	case TriStateTrue:
		return true, true
	case TriStateFalse:
		return false, true
	}
	return false, false
}

type AddMessageRequest struct {
	ObsId       string   `json:"obs_id" validate:"required"`
	Instrument  string   `json:"instrument" validate:"required"`
	MessageText string   `json:"message_text" validate:"required"`
	Level       *int     `json:"level"` // defaults to 20 (info)
	Tags        []string `json:"tags"`
	Urls        []string `json:"urls"`
	UserId      string   `json:"user_id" validate:"required"`
	UserAgent   string   `json:"user_agent" validate:"required"`
	IsHuman     *bool    `json:"is_human" validate:"required"`
	// IsNew asserts the exposure may not yet be registered: skip the registry
	// existence check and compute day_obs from the current time instead.
	IsNew        *bool  `json:"is_new" validate:"required"`
	ExposureFlag string `json:"exposure_flag" validate:"omitempty,oneof=none junk questionable"`
}

// EditMessageRequest carries the fields an edit may override. site_id is
// deliberately not among them: the superseding message always belongs to
// this deployment.
type EditMessageRequest struct {
	Id           uuid.UUID `json:"-"`
	MessageText  *string   `json:"message_text"`
	Level        *int      `json:"level"`
	Tags         []string  `json:"tags"` // if set, replaces the existing set
	Urls         []string  `json:"urls"` // if set, replaces the existing set
	UserId       *string   `json:"user_id"`
	UserAgent    *string   `json:"user_agent"`
	IsHuman      *bool     `json:"is_human"`
	ExposureFlag *string   `json:"exposure_flag" validate:"omitempty,oneof=none junk questionable"`
}

type MessageResponse struct {
	Id              uuid.UUID  `json:"id"`
	SiteId          string     `json:"site_id"`
	ObsId           string     `json:"obs_id"`
	Instrument      string     `json:"instrument"`
	DayObs          int        `json:"day_obs"`
	SeqNum          int        `json:"seq_num"`
	MessageText     string     `json:"message_text"`
	Level           int        `json:"level"`
	Tags            []string   `json:"tags"`
	Urls            []string   `json:"urls"`
	UserId          string     `json:"user_id"`
	UserAgent       string     `json:"user_agent"`
	IsHuman         bool       `json:"is_human"`
	IsValid         bool       `json:"is_valid"`
	ExposureFlag    string     `json:"exposure_flag"`
	DateAdded       time.Time  `json:"date_added"`
	DateInvalidated *time.Time `json:"date_invalidated"`
	ParentId        *uuid.UUID `json:"parent_id"`
}

// FindMessagesRequest carries every optional filter of the message search.
// Absent parameters stay nil and contribute no predicate. Date fields are
// ISO strings parsed by the service so malformed input is a clean 400.
type FindMessagesRequest struct {
	SiteIds            []string `query:"site_ids"`
	ObsId              *string  `query:"obs_id"` // substring match
	Instruments        []string `query:"instruments"`
	MinDayObs          *int     `query:"min_day_obs"`
	MaxDayObs          *int     `query:"max_day_obs"`
	MinSeqNum          *int     `query:"min_seq_num"`
	MaxSeqNum          *int     `query:"max_seq_num"`
	MessageText        *string  `query:"message_text"` // substring match
	MinLevel           *int     `query:"min_level"`
	MaxLevel           *int     `query:"max_level"`
	Tags               []string `query:"tags"`
	Urls               []string `query:"urls"`
	ExcludeTags        []string `query:"exclude_tags"`
	UserIds            []string `query:"user_ids"`
	UserAgents         []string `query:"user_agents"`
	IsHuman            TriState `query:"is_human"`
	IsValid            TriState `query:"is_valid"`
	ExposureFlags      []string `query:"exposure_flags"`
	MinDateAdded       *string  `query:"min_date_added"`
	MaxDateAdded       *string  `query:"max_date_added"`
	HasDateInvalidated *bool    `query:"has_date_invalidated"`
	MinDateInvalidated *string  `query:"min_date_invalidated"`
	MaxDateInvalidated *string  `query:"max_date_invalidated"`
	HasParentId        *bool    `query:"has_parent_id"`
	OrderBy            []string `query:"order_by"`
	Offset             int      `query:"offset"`
	Limit              int      `query:"limit"`
}

// NewFindMessagesRequest returns a request with the documented defaults:
// only valid messages, first page of 50, ordered by id.
func NewFindMessagesRequest() FindMessagesRequest {
	return FindMessagesRequest{
		IsHuman: TriStateEither,
		IsValid: TriStateTrue,
		Offset:  0,
		Limit:   50,
	}
}
