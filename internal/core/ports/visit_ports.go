package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
)

// VisitRepository implementations must make Record atomic with respect to the
// (bar, visit_date) uniqueness rule.
type VisitRepository interface {
	Record(ctx context.Context, visit *domain.Visit) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	ListAll(ctx context.Context) ([]*domain.VisitDetail, error)
	ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error)
}

type RecordVisitInput struct {
	BarID     uuid.UUID
	VisitDate domain.Date
	Notes     *string
	CreatedBy uuid.UUID
}

type VisitService interface {
	Record(ctx context.Context, input RecordVisitInput) (*domain.Visit, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	ListAll(ctx context.Context) ([]*domain.VisitDetail, error)
	ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error)
}
