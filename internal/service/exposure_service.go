package service

import (
	"context"
	"time"

	"exposurelog-be/internal/dto"
	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/internal/pkg/logger"
	"exposurelog-be/pkg/butler"
)

type IExposureService interface {
	Find(ctx context.Context, req *dto.FindExposuresRequest) ([]*dto.ExposureResponse, error)
}

type exposureService struct {
	registries []butler.Registry
	log        logger.ILogger
}

func NewExposureService(registries []butler.Registry, log logger.ILogger) IExposureService {
	return &exposureService{
		registries: registries,
		log:        log,
	}
}

func (s *exposureService) Find(ctx context.Context, req *dto.FindExposuresRequest) ([]*dto.ExposureResponse, error) {
	if req.Registry < 1 || req.Registry > len(s.registries) {
		return nil, apperror.NotFound("registry=%d but only %d registries are configured", req.Registry, len(s.registries))
	}
	registry := s.registries[req.Registry-1]

	query, err := buildExposureQuery(req)
	if err != nil {
		return nil, err
	}

	records, err := registry.FindExposures(ctx, *query)
	if err != nil {
		return nil, apperror.Internal(err, "registry query failed")
	}

	responses := make([]*dto.ExposureResponse, len(records))
	for i, record := range records {
		responses[i] = exposureToResponse(record)
	}
	return responses, nil
}

// buildExposureQuery validates the request and translates it into the
// registry's query interface. The date pair is passed through unchanged:
// the registry applies timespan-overlap semantics (timespan_end > min_date,
// timespan_begin <= max_date) because an exposure spans an interval.
func buildExposureQuery(req *dto.FindExposuresRequest) (*butler.Query, error) {
	if err := validatePagination(req.Offset, req.Limit); err != nil {
		return nil, err
	}

	var minDate, maxDate *time.Time
	if req.MinDate != nil {
		t, err := parseDate("min_date", *req.MinDate)
		if err != nil {
			return nil, err
		}
		minDate = &t
	}
	if req.MaxDate != nil {
		t, err := parseDate("max_date", *req.MaxDate)
		if err != nil {
			return nil, err
		}
		maxDate = &t
	}

	orderBy, err := validateOrderBy(req.OrderBy, entity.ExposureOrderByFields)
	if err != nil {
		return nil, err
	}

	return &butler.Query{
		Instrument:         req.Instrument,
		MinDayObs:          req.MinDayObs,
		MaxDayObs:          req.MaxDayObs,
		MinSeqNum:          req.MinSeqNum,
		MaxSeqNum:          req.MaxSeqNum,
		GroupNames:         req.GroupNames,
		ObservationReasons: req.ObservationReasons,
		ObservationTypes:   req.ObservationTypes,
		MinDate:            minDate,
		MaxDate:            maxDate,
		OrderBy:            orderBy,
		Offset:             req.Offset,
		Limit:              req.Limit,
	}, nil
}

func exposureToResponse(record *butler.ExposureRecord) *dto.ExposureResponse {
	return &dto.ExposureResponse{
		ObsId:             record.ObsId,
		Id:                record.Id,
		Instrument:        record.Instrument,
		ObservationType:   record.ObservationType,
		ObservationReason: record.ObservationReason,
		DayObs:            record.DayObs,
		SeqNum:            record.SeqNum,
		GroupName:         record.GroupName,
		TargetName:        record.TargetName,
		ScienceProgram:    record.ScienceProgram,
		TrackingRa:        record.TrackingRa,
		TrackingDec:       record.TrackingDec,
		SkyAngle:          record.SkyAngle,
		TimespanBegin:     record.TimespanBegin,
		TimespanEnd:       record.TimespanEnd,
	}
}
