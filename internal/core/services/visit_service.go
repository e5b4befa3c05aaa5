package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type visitService struct {
	repo ports.VisitRepository
}

func NewVisitService(repo ports.VisitRepository) ports.VisitService {
	return &visitService{
		repo: repo,
	}
}

// Record stores a visit for the caller-supplied date; past and future days are both allowed.
func (s *visitService) Record(ctx context.Context, input ports.RecordVisitInput) (*domain.Visit, error) {
	if input.CreatedBy == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	if input.BarID == uuid.Nil {
		return nil, fmt.Errorf("%w: bar id is required", domain.ErrInvalidInput)
	}
	if input.VisitDate.IsZero() {
		return nil, fmt.Errorf("%w: visit date is required", domain.ErrInvalidInput)
	}

	createdBy := input.CreatedBy
	visit := &domain.Visit{
		BarID:     input.BarID,
		VisitDate: input.VisitDate,
		Notes:     optionalText(input.Notes),
		CreatedBy: &createdBy,
	}

	if err := s.repo.Record(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *visitService) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error) {
	if id == uuid.Nil {
		return nil, domain.ErrVisitNotFound
	}
	return s.repo.UpdateNotes(ctx, id, optionalText(notes))
}

func (s *visitService) Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	if id == uuid.Nil {
		return nil, domain.ErrVisitNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *visitService) ListAll(ctx context.Context) ([]*domain.VisitDetail, error) {
	visits, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []*domain.VisitDetail{}
	}
	return visits, nil
}

// ListByRange returns visits with start <= visit_date <= end, newest first.
// An inverted range is empty rather than an error.
func (s *visitService) ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if start.After(end) {
		return []*domain.VisitDetail{}, nil
	}

	visits, err := s.repo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []*domain.VisitDetail{}
	}
	return visits, nil
}
