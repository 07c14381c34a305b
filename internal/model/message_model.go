package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SiteIDLen is the maximum length of the site_id column.
const SiteIDLen = 16

// Message is the messages table. is_valid is a generated column: it always
// equals "date_invalidated IS NULL" and is never written by the application.
type Message struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteId          string         `gorm:"type:varchar(16);not null"`
	ObsId           string         `gorm:"type:varchar(64);not null;index"`
	Instrument      string         `gorm:"type:varchar(32);not null;index"`
	DayObs          int            `gorm:"not null;index"`
	SeqNum          int            `gorm:"not null"`
	MessageText     string         `gorm:"type:text;not null"`
	Level           int            `gorm:"not null"`
	Tags            pq.StringArray `gorm:"type:text[];not null"`
	Urls            pq.StringArray `gorm:"type:text[];not null"`
	UserId          string         `gorm:"type:varchar(64);not null;index"`
	UserAgent       string         `gorm:"type:varchar(64);not null"`
	IsHuman         bool           `gorm:"not null"`
	IsValid         bool           `gorm:"->;type:boolean GENERATED ALWAYS AS (date_invalidated IS NULL) STORED;index"`
	ExposureFlag    string         `gorm:"type:exposure_flag_enum;not null;default:'none';index"`
	DateAdded       time.Time      `gorm:"not null;index"`
	DateInvalidated *time.Time
	ParentId        *uuid.UUID `gorm:"type:uuid"`
	Parent          *Message   `gorm:"foreignKey:ParentId"`
}

func (Message) TableName() string {
	return "messages"
}
