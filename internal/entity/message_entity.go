package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExposureFlag marks an exposure as possibly (questionable) or likely (junk) bad.
type ExposureFlag string

const (
	ExposureFlagNone         ExposureFlag = "none"
	ExposureFlagJunk         ExposureFlag = "junk"
	ExposureFlagQuestionable ExposureFlag = "questionable"
)

func (f ExposureFlag) Valid() bool {
	switch f {
	case ExposureFlagNone, ExposureFlagJunk, ExposureFlagQuestionable:
		return true
	}
	return false
}

// Message is a log message attached to an exposure. A message is immutable
// except for the single transition DateInvalidated: nil -> timestamp.
// Edits are modeled as a new message whose ParentId references the original.
type Message struct {
	Id              uuid.UUID
	SiteId          string
	ObsId           string
	Instrument      string
	DayObs          int
	SeqNum          int
	MessageText     string
	Level           int
	Tags            []string
	Urls            []string
	UserId          string
	UserAgent       string
	IsHuman         bool
	IsValid         bool
	ExposureFlag    ExposureFlag
	DateAdded       time.Time
	DateInvalidated *time.Time
	ParentId        *uuid.UUID
}

// MessageOrderByFields is the set of field names accepted by the order_by
// parameter of the message search, i.e. the column names of the messages table.
var MessageOrderByFields = map[string]bool{
	"id":               true,
	"site_id":          true,
	"obs_id":           true,
	"instrument":       true,
	"day_obs":          true,
	"seq_num":          true,
	"message_text":     true,
	"level":            true,
	"tags":             true,
	"urls":             true,
	"user_id":          true,
	"user_agent":       true,
	"is_human":         true,
	"is_valid":         true,
	"exposure_flag":    true,
	"date_added":       true,
	"date_invalidated": true,
	"parent_id":        true,
}
