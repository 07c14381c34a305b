package service

import (
	"context"
	"strings"
	"time"

	"exposurelog-be/internal/dto"
	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/internal/pkg/logger"
	"exposurelog-be/internal/pkg/obsday"
	"exposurelog-be/internal/pkg/tags"
	"exposurelog-be/internal/repository/specification"
	"exposurelog-be/internal/repository/unitofwork"
	"exposurelog-be/pkg/butler"

	"github.com/google/uuid"
)

// Default message level, matching the "info" severity most observing tools send.
const defaultLevel = 20

type IMessageService interface {
	Add(ctx context.Context, req *dto.AddMessageRequest) (*dto.MessageResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MessageResponse, error)
	Find(ctx context.Context, req *dto.FindMessagesRequest) ([]*dto.MessageResponse, error)
	Edit(ctx context.Context, req *dto.EditMessageRequest) (*dto.MessageResponse, error)
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
	registries []butler.Registry
	siteID     string
	log        logger.ILogger
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	registries []butler.Registry,
	siteID string,
	log logger.ILogger,
) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
		registries: registries,
		siteID:     siteID,
		log:        log,
	}
}

func (s *messageService) Add(ctx context.Context, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
	now, currentDayObs := obsday.Current()

	normalizedTags, err := tags.Normalize(req.Tags)
	if err != nil {
		return nil, err
	}

	// The array columns are NOT NULL: an absent list is stored as an empty
	// array, never as SQL NULL.
	urls := req.Urls
	if urls == nil {
		urls = []string{}
	}

	exposureFlag := entity.ExposureFlag(req.ExposureFlag)
	if req.ExposureFlag == "" {
		exposureFlag = entity.ExposureFlagNone
	}

	level := defaultLevel
	if req.Level != nil {
		level = *req.Level
	}

	// Check the exposure exists and determine day_obs and seq_num. If the
	// caller asserts the exposure is new it need not be registered yet, and
	// day_obs/seq_num come from the obs_id itself.
	var dayObs, seqNum int
	exposure, lookupErr := s.exposureFromRegistries(ctx, req.Instrument, req.ObsId)
	if lookupErr != nil {
		if !*req.IsNew {
			return nil, apperror.NotFound("no exposure found with instrument=%s and obs_id=%s: %v",
				req.Instrument, req.ObsId, lookupErr)
		}
		dayObs, seqNum, err = obsday.CheckObsID(req.ObsId, currentDayObs)
		if err != nil {
			return nil, err
		}
	} else {
		dayObs = exposure.DayObs
		seqNum = exposure.SeqNum
	}

	message := entity.Message{
		Id:           uuid.New(),
		SiteId:       s.siteID,
		ObsId:        req.ObsId,
		Instrument:   req.Instrument,
		DayObs:       dayObs,
		SeqNum:       seqNum,
		MessageText:  req.MessageText,
		Level:        level,
		Tags:         normalizedTags,
		Urls:         urls,
		UserId:       req.UserId,
		UserAgent:    req.UserAgent,
		IsHuman:      *req.IsHuman,
		IsValid:      true,
		ExposureFlag: exposureFlag,
		DateAdded:    now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().Create(ctx, &message); err != nil {
		return nil, apperror.Internal(err, "failed to store message")
	}

	s.log.Info("message", "message added", map[string]interface{}{
		"id":     message.Id,
		"obs_id": message.ObsId,
	})
	return messageToResponse(&message), nil
}

// exposureFromRegistries searches the configured registries in order and
// returns the first match. The remaining registries are not searched.
func (s *messageService) exposureFromRegistries(ctx context.Context, instrument, obsID string) (*butler.ExposureRecord, error) {
	var lastErr error = butler.ErrExposureNotFound
	for _, registry := range s.registries {
		exposure, err := registry.FindExposure(ctx, instrument, obsID)
		if err == nil {
			return exposure, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *messageService) Get(ctx context.Context, id uuid.UUID) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	message, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal(err, "failed to read message")
	}
	if message == nil {
		return nil, apperror.NotFound("no message found with id=%s", id)
	}
	return messageToResponse(message), nil
}

func (s *messageService) Invalidate(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.MessageRepository().Invalidate(ctx, id, time.Now().UTC())
	if err != nil {
		return apperror.Internal(err, "failed to invalidate message")
	}
	if !found {
		return apperror.NotFound("no message found with id=%s", id)
	}
	return nil
}

func (s *messageService) Find(ctx context.Context, req *dto.FindMessagesRequest) ([]*dto.MessageResponse, error) {
	specs, err := buildMessageSpecs(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal(err, "failed to search messages")
	}

	responses := make([]*dto.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = messageToResponse(message)
	}
	return responses, nil
}

// Edit supersedes a message: inside one transaction, insert a new message
// that copies the parent overridden by the supplied fields, with parent_id
// linking back, then invalidate the parent.
func (s *messageService) Edit(ctx context.Context, req *dto.EditMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err, "failed to start transaction")
	}
	defer uow.Rollback() //nolint:errcheck // no-op after commit

	repo := uow.MessageRepository()
	parent, err := repo.FindOne(ctx, specification.ByID{ID: req.Id}, specification.ForUpdate{})
	if err != nil {
		return nil, apperror.Internal(err, "failed to read message")
	}
	if parent == nil {
		return nil, apperror.NotFound("no message found with id=%s", req.Id)
	}

	now := time.Now().UTC()
	child := *parent
	child.Id = uuid.New()
	child.SiteId = s.siteID
	child.DateAdded = now
	child.DateInvalidated = nil
	child.IsValid = true
	child.ParentId = &parent.Id

	if req.MessageText != nil {
		child.MessageText = *req.MessageText
	}
	if req.Level != nil {
		child.Level = *req.Level
	}
	if req.Tags != nil {
		normalizedTags, err := tags.Normalize(req.Tags)
		if err != nil {
			return nil, err
		}
		child.Tags = normalizedTags
	}
	if req.Urls != nil {
		child.Urls = req.Urls
	}
	if req.UserId != nil {
		child.UserId = *req.UserId
	}
	if req.UserAgent != nil {
		child.UserAgent = *req.UserAgent
	}
	if req.IsHuman != nil {
		child.IsHuman = *req.IsHuman
	}
	if req.ExposureFlag != nil {
		child.ExposureFlag = entity.ExposureFlag(*req.ExposureFlag)
	}

	if err := repo.Create(ctx, &child); err != nil {
		return nil, apperror.Internal(err, "failed to store edited message")
	}
	if _, err := repo.Invalidate(ctx, parent.Id, now); err != nil {
		return nil, apperror.Internal(err, "failed to invalidate parent message")
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err, "failed to commit edit")
	}

	s.log.Info("message", "message edited", map[string]interface{}{
		"id":        child.Id,
		"parent_id": parent.Id,
	})
	return messageToResponse(&child), nil
}

// buildMessageSpecs translates the filter request into the enumerated
// predicate set, plus ordering and pagination. Every present parameter maps
// to exactly one predicate kind; all predicates are conjoined.
func buildMessageSpecs(req *dto.FindMessagesRequest) ([]specification.Specification, error) {
	if err := validatePagination(req.Offset, req.Limit); err != nil {
		return nil, err
	}

	var specs []specification.Specification

	if req.SiteIds != nil {
		specs = append(specs, specification.In{Field: "site_id", Values: req.SiteIds})
	}
	if req.ObsId != nil {
		specs = append(specs, specification.Contains{Field: "obs_id", Value: *req.ObsId})
	}
	if req.Instruments != nil {
		specs = append(specs, specification.In{Field: "instrument", Values: req.Instruments})
	}
	if req.MinDayObs != nil {
		specs = append(specs, specification.Min{Field: "day_obs", Value: *req.MinDayObs})
	}
	if req.MaxDayObs != nil {
		specs = append(specs, specification.Max{Field: "day_obs", Value: *req.MaxDayObs})
	}
	if req.MinSeqNum != nil {
		specs = append(specs, specification.Min{Field: "seq_num", Value: *req.MinSeqNum})
	}
	if req.MaxSeqNum != nil {
		specs = append(specs, specification.Max{Field: "seq_num", Value: *req.MaxSeqNum})
	}
	if req.MessageText != nil {
		specs = append(specs, specification.Contains{Field: "message_text", Value: *req.MessageText})
	}
	if req.MinLevel != nil {
		specs = append(specs, specification.Min{Field: "level", Value: *req.MinLevel})
	}
	if req.MaxLevel != nil {
		specs = append(specs, specification.Max{Field: "level", Value: *req.MaxLevel})
	}
	if req.Tags != nil {
		normalized, err := tags.Normalize(req.Tags)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.ArrayOverlap{Field: "tags", Values: normalized})
	}
	if req.Urls != nil {
		specs = append(specs, specification.ArrayOverlap{Field: "urls", Values: req.Urls})
	}
	if req.ExcludeTags != nil {
		normalized, err := tags.Normalize(req.ExcludeTags)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.ArrayNotOverlap{Field: "tags", Values: normalized})
	}
	if req.UserIds != nil {
		specs = append(specs, specification.In{Field: "user_id", Values: req.UserIds})
	}
	if req.UserAgents != nil {
		specs = append(specs, specification.In{Field: "user_agent", Values: req.UserAgents})
	}

	if !req.IsHuman.Valid() {
		return nil, apperror.BadRequest("invalid is_human=%q; allowed values are either, true, false", req.IsHuman)
	}
	if value, present := req.IsHuman.Bool(); present {
		specs = append(specs, specification.Equals{Field: "is_human", Value: value})
	}
	if !req.IsValid.Valid() {
		return nil, apperror.BadRequest("invalid is_valid=%q; allowed values are either, true, false", req.IsValid)
	}
	if value, present := req.IsValid.Bool(); present {
		specs = append(specs, specification.Equals{Field: "is_valid", Value: value})
	}

	if req.ExposureFlags != nil {
		for _, flag := range req.ExposureFlags {
			if !entity.ExposureFlag(flag).Valid() {
				return nil, apperror.BadRequest("invalid exposure flag %q; allowed values are none, junk, questionable", flag)
			}
		}
		specs = append(specs, specification.In{Field: "exposure_flag", Values: req.ExposureFlags})
	}

	if spec, err := dateSpec("min_date_added", req.MinDateAdded, true); err != nil {
		return nil, err
	} else if spec != nil {
		specs = append(specs, spec)
	}
	if spec, err := dateSpec("max_date_added", req.MaxDateAdded, false); err != nil {
		return nil, err
	} else if spec != nil {
		specs = append(specs, spec)
	}
	if req.HasDateInvalidated != nil {
		specs = append(specs, specification.Has{Field: "date_invalidated", Present: *req.HasDateInvalidated})
	}
	if spec, err := dateSpec("min_date_invalidated", req.MinDateInvalidated, true); err != nil {
		return nil, err
	} else if spec != nil {
		specs = append(specs, spec)
	}
	if spec, err := dateSpec("max_date_invalidated", req.MaxDateInvalidated, false); err != nil {
		return nil, err
	} else if spec != nil {
		specs = append(specs, spec)
	}
	if req.HasParentId != nil {
		specs = append(specs, specification.Has{Field: "parent_id", Present: *req.HasParentId})
	}

	orderBy, err := validateOrderBy(req.OrderBy, entity.MessageOrderByFields)
	if err != nil {
		return nil, err
	}
	specs = append(specs, orderBySpecs(orderBy)...)
	specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: req.Offset})

	return specs, nil
}

// validateOrderBy checks every sort key against the allowed field set and
// appends an ascending id tie-breaker unless the caller already ordered by
// id in either direction. The tie-breaker guarantees a total order: without
// one, repeated calls with offset and limit can return duplicate or missing
// rows because the storage has no implicit stable order.
func validateOrderBy(orderBy []string, allowedFields map[string]bool) ([]string, error) {
	if orderBy == nil {
		return []string{"id"}, nil
	}
	var badFields []string
	hasID := false
	for _, item := range orderBy {
		field := strings.TrimPrefix(item, "-")
		if !allowedFields[field] {
			badFields = append(badFields, item)
		}
		if field == "id" {
			hasID = true
		}
	}
	if len(badFields) > 0 {
		return nil, apperror.BadRequest("invalid order_by fields: %s", strings.Join(badFields, ", "))
	}
	if !hasID {
		orderBy = append(orderBy, "id")
	}
	return orderBy, nil
}

func orderBySpecs(orderBy []string) []specification.Specification {
	specs := make([]specification.Specification, len(orderBy))
	for i, item := range orderBy {
		if strings.HasPrefix(item, "-") {
			specs[i] = specification.OrderBy{Field: item[1:], Desc: true}
		} else {
			specs[i] = specification.OrderBy{Field: item}
		}
	}
	return specs
}

func validatePagination(offset, limit int) error {
	if offset < 0 {
		return apperror.BadRequest("offset=%d must be >= 0", offset)
	}
	if limit <= 1 {
		return apperror.BadRequest("limit=%d must be > 1", limit)
	}
	return nil
}

// Dates arrive as ISO strings (TAI, no timezone); the time portion may be
// separated with a space or a T, with optional fractional seconds.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02",
}

func parseDate(name string, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.BadRequest("invalid %s=%q: not an ISO date", name, value)
}

func dateSpec(name string, value *string, isMin bool) (specification.Specification, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(name, *value)
	if err != nil {
		return nil, err
	}
	field := strings.TrimPrefix(strings.TrimPrefix(name, "min_"), "max_")
	if isMin {
		return specification.Min{Field: field, Value: t}, nil
	}
	return specification.Max{Field: field, Value: t}, nil
}

func messageToResponse(message *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:              message.Id,
		SiteId:          message.SiteId,
		ObsId:           message.ObsId,
		Instrument:      message.Instrument,
		DayObs:          message.DayObs,
		SeqNum:          message.SeqNum,
		MessageText:     message.MessageText,
		Level:           message.Level,
		Tags:            message.Tags,
		Urls:            message.Urls,
		UserId:          message.UserId,
		UserAgent:       message.UserAgent,
		IsHuman:         message.IsHuman,
		IsValid:         message.IsValid,
		ExposureFlag:    string(message.ExposureFlag),
		DateAdded:       message.DateAdded,
		DateInvalidated: message.DateInvalidated,
		ParentId:        message.ParentId,
	}
}
