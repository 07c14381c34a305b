package contract

import (
	"context"
	"time"

	"exposurelog-be/internal/entity"
	"exposurelog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	// Invalidate sets date_invalidated to at, but only if it is still null,
	// in a single conditional update. Returns false if no row has the id.
	Invalidate(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}
