package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
)

type BarRepository interface {
	Create(ctx context.Context, bar *domain.Bar) error
	List(ctx context.Context, day domain.Date) ([]*domain.BarSummary, error)
	GetByID(ctx context.Context, id uuid.UUID, day domain.Date) (*domain.BarSummary, error)
	Update(ctx context.Context, bar *domain.Bar) error
	Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error)
}

type CreateBarInput struct {
	Name        string
	Address     *string
	Description *string
	CreatedBy   uuid.UUID
}

type UpdateBarInput struct {
	ID          uuid.UUID
	Name        string
	Address     *string
	Description *string
}

type BarService interface {
	Create(ctx context.Context, input CreateBarInput) (*domain.Bar, error)
	List(ctx context.Context) ([]*domain.BarSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.BarSummary, error)
	Update(ctx context.Context, input UpdateBarInput) (*domain.Bar, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error)
}
