package service

import (
	"context"
	"fmt"
	"time"

	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/repository/contract"
	"exposurelog-be/internal/repository/specification"
	"exposurelog-be/internal/repository/unitofwork"
	"exposurelog-be/pkg/butler"

	"github.com/google/uuid"
)

// In-memory stand-ins for the storage and registry layers, shared by the
// service tests in this package.

type fakeMessageRepo struct {
	messages  []*entity.Message
	lastSpecs []specification.Specification
}

func (r *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *fakeMessageRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Message, error) {
	r.lastSpecs = specs
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, message := range r.messages {
				if message.Id == byID.ID {
					found := *message
					return &found, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.lastSpecs = specs
	results := make([]*entity.Message, len(r.messages))
	for i, message := range r.messages {
		found := *message
		results[i] = &found
	}
	return results, nil
}

func (r *fakeMessageRepo) Invalidate(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	for _, message := range r.messages {
		if message.Id == id {
			if message.DateInvalidated == nil {
				stamped := at
				message.DateInvalidated = &stamped
				message.IsValid = false
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMessageRepo) byID(id uuid.UUID) *entity.Message {
	for _, message := range r.messages {
		if message.Id == id {
			return message
		}
	}
	return nil
}

type fakeUnitOfWork struct {
	repo      *fakeMessageRepo
	begins    int
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	u.begins++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository {
	return u.repo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeFactory() (*fakeFactory, *fakeMessageRepo) {
	repo := &fakeMessageRepo{}
	return &fakeFactory{uow: &fakeUnitOfWork{repo: repo}}, repo
}

type fakeRegistry struct {
	uri         string
	exposures   map[string]*butler.ExposureRecord
	records     []*butler.ExposureRecord
	instruments []string
	lastQuery   *butler.Query
}

func (r *fakeRegistry) FindExposure(_ context.Context, instrument, obsID string) (*butler.ExposureRecord, error) {
	if exposure, ok := r.exposures[obsID]; ok {
		return exposure, nil
	}
	return nil, fmt.Errorf("%w: instrument=%s obs_id=%s", butler.ErrExposureNotFound, instrument, obsID)
}

func (r *fakeRegistry) FindExposures(_ context.Context, query butler.Query) ([]*butler.ExposureRecord, error) {
	q := query
	r.lastQuery = &q
	return r.records, nil
}

func (r *fakeRegistry) Instruments(_ context.Context) ([]string, error) {
	return r.instruments, nil
}

func (r *fakeRegistry) URI() string {
	return r.uri
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}
