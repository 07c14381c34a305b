package specification

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// The closed set of predicate kinds used by the message search. Field names
// are never taken from user input directly: the service layer maps each
// recognized filter parameter to one of these with a hard-coded column name.

// Min filters on field >= value (inclusive lower bound).
type Min struct {
	Field string
	Value interface{}
}

func (s Min) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s >= ?", s.Field), s.Value)
}

// Max filters on field < value (exclusive upper bound).
// Note the asymmetry with Min: minimums are inclusive, maximums exclusive.
type Max struct {
	Field string
	Value interface{}
}

func (s Max) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s < ?", s.Field), s.Value)
}

// Has filters on whether a nullable field is set.
type Has struct {
	Field   string
	Present bool
}

func (s Has) Apply(db *gorm.DB) *gorm.DB {
	if s.Present {
		return db.Where(fmt.Sprintf("%s IS NOT NULL", s.Field))
	}
	return db.Where(fmt.Sprintf("%s IS NULL", s.Field))
}

// ArrayOverlap matches rows whose array field shares at least one element
// with Values (the Postgres && operator). Values must not be empty: the
// transport layer represents "not provided" as absence, never as an empty list.
type ArrayOverlap struct {
	Field  string
	Values []string
}

func (s ArrayOverlap) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s && ?", s.Field), pq.Array(s.Values))
}

// ArrayNotOverlap matches rows whose array field shares no element with
// Values, including rows whose array is empty.
type ArrayNotOverlap struct {
	Field  string
	Values []string
}

func (s ArrayNotOverlap) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("NOT (%s && ?)", s.Field), pq.Array(s.Values))
}

// In is a membership test: the field value is one of Values.
type In struct {
	Field  string
	Values interface{}
}

func (s In) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s IN ?", s.Field), s.Values)
}

// Contains is a case-sensitive substring match.
type Contains struct {
	Field string
	Value string
}

func (s Contains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s LIKE ?", s.Field), "%"+s.Value+"%")
}

// Equals is an equality test, used for tri-state boolean filters once the
// "either" case has been resolved to no predicate at all.
type Equals struct {
	Field string
	Value interface{}
}

func (s Equals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s = ?", s.Field), s.Value)
}
