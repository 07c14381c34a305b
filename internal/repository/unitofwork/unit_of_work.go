package unitofwork

import (
	"context"

	"exposurelog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MessageRepository() contract.MessageRepository
}
