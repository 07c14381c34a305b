package service

import (
	"context"

	"exposurelog-be/internal/dto"
	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/pkg/butler"
)

type IConfigurationService interface {
	GetConfiguration() *dto.ConfigurationResponse
	GetInstruments(ctx context.Context) (*dto.InstrumentsResponse, error)
}

type configurationService struct {
	siteID     string
	registries []butler.Registry
}

func NewConfigurationService(siteID string, registries []butler.Registry) IConfigurationService {
	return &configurationService{
		siteID:     siteID,
		registries: registries,
	}
}

func (s *configurationService) GetConfiguration() *dto.ConfigurationResponse {
	res := &dto.ConfigurationResponse{
		SiteId: s.siteID,
	}
	if len(s.registries) > 0 {
		res.ButlerUri1 = s.registries[0].URI()
	}
	if len(s.registries) > 1 {
		res.ButlerUri2 = s.registries[1].URI()
	}
	return res
}

func (s *configurationService) GetInstruments(ctx context.Context) (*dto.InstrumentsResponse, error) {
	res := &dto.InstrumentsResponse{
		ButlerInstruments1: []string{},
		ButlerInstruments2: []string{},
	}
	for i, registry := range s.registries {
		instruments, err := registry.Instruments(ctx)
		if err != nil {
			return nil, apperror.Internal(err, "failed to list registry instruments")
		}
		switch i {
		case 0:
			res.ButlerInstruments1 = instruments
		case 1:
			res.ButlerInstruments2 = instruments
		}
	}
	return res, nil
}
