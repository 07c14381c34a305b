package mapper

import (
	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:          msg.Id,
		SiteId:      msg.SiteId,
		ObsId:       msg.ObsId,
		Instrument:  msg.Instrument,
		DayObs:      msg.DayObs,
		SeqNum:      msg.SeqNum,
		MessageText: msg.MessageText,
		Level:       msg.Level,
		Tags:        msg.Tags,
		Urls:        msg.Urls,
		UserId:      msg.UserId,
		UserAgent:   msg.UserAgent,
		IsHuman:     msg.IsHuman,
		// Derived here rather than copied from the generated column, so the
		// invariant holds even for records that never round-tripped the database.
		IsValid:         msg.DateInvalidated == nil,
		ExposureFlag:    entity.ExposureFlag(msg.ExposureFlag),
		DateAdded:       msg.DateAdded,
		DateInvalidated: msg.DateInvalidated,
		ParentId:        msg.ParentId,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:              msg.Id,
		SiteId:          msg.SiteId,
		ObsId:           msg.ObsId,
		Instrument:      msg.Instrument,
		DayObs:          msg.DayObs,
		SeqNum:          msg.SeqNum,
		MessageText:     msg.MessageText,
		Level:           msg.Level,
		Tags:            msg.Tags,
		Urls:            msg.Urls,
		UserId:          msg.UserId,
		UserAgent:       msg.UserAgent,
		IsHuman:         msg.IsHuman,
		ExposureFlag:    string(msg.ExposureFlag),
		DateAdded:       msg.DateAdded,
		DateInvalidated: msg.DateInvalidated,
		ParentId:        msg.ParentId,
	}
}

func (m *MessageMapper) ToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
