package mapper

import (
	"testing"
	"time"

	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToEntityDerivesIsValid(t *testing.T) {
	m := NewMessageMapper()

	fresh := &model.Message{Id: uuid.New()}
	assert.True(t, m.ToEntity(fresh).IsValid)

	at := time.Now().UTC()
	invalidated := &model.Message{Id: uuid.New(), DateInvalidated: &at}
	assert.False(t, m.ToEntity(invalidated).IsValid)
}

func TestToModelOmitsIsValid(t *testing.T) {
	m := NewMessageMapper()

	// is_valid is a generated column; the model must never carry a value
	// for it on the write path.
	msg := &entity.Message{Id: uuid.New(), IsValid: true}
	assert.False(t, m.ToModel(msg).IsValid)
}

func TestRoundTrip(t *testing.T) {
	m := NewMessageMapper()
	parentID := uuid.New()

	original := &entity.Message{
		Id:           uuid.New(),
		SiteId:       "summit",
		ObsId:        "LC_O_20240610_000042",
		Instrument:   "LSSTCam",
		DayObs:       20240610,
		SeqNum:       42,
		MessageText:  "clouds rolling in",
		Level:        20,
		Tags:         []string{"weather_alert"},
		Urls:         []string{"https://example.org/report"},
		UserId:       "observer",
		UserAgent:    "exposurelog-cli",
		IsHuman:      true,
		IsValid:      true,
		ExposureFlag: entity.ExposureFlagNone,
		DateAdded:    time.Now().UTC(),
		ParentId:     &parentID,
	}

	got := m.ToEntity(m.ToModel(original))
	assert.Equal(t, original, got)
}

func TestNilSafety(t *testing.T) {
	m := NewMessageMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
	assert.Empty(t, m.ToEntities(nil))
}
