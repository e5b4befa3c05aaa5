package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

const maxBarNameLength = 255

type barService struct {
	clock ports.Clock
	repo  ports.BarRepository
}

func NewBarService(clock ports.Clock, repo ports.BarRepository) ports.BarService {
	return &barService{
		clock: clock,
		repo:  repo,
	}
}

func (s *barService) Create(ctx context.Context, input ports.CreateBarInput) (*domain.Bar, error) {
	if input.CreatedBy == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}
	name, err := validateBarName(input.Name)
	if err != nil {
		return nil, err
	}

	createdBy := input.CreatedBy
	bar := &domain.Bar{
		Name:        name,
		Address:     optionalText(input.Address),
		Description: optionalText(input.Description),
		CreatedBy:   &createdBy,
	}

	if err := s.repo.Create(ctx, bar); err != nil {
		return nil, err
	}
	return bar, nil
}

func (s *barService) List(ctx context.Context) ([]*domain.BarSummary, error) {
	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	bars, err := s.repo.List(ctx, today)
	if err != nil {
		return nil, err
	}
	if bars == nil {
		bars = []*domain.BarSummary{}
	}
	return bars, nil
}

func (s *barService) Get(ctx context.Context, id uuid.UUID) (*domain.BarSummary, error) {
	if id == uuid.Nil {
		return nil, domain.ErrBarNotFound
	}

	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id, today)
}

func (s *barService) Update(ctx context.Context, input ports.UpdateBarInput) (*domain.Bar, error) {
	if input.ID == uuid.Nil {
		return nil, domain.ErrBarNotFound
	}
	name, err := validateBarName(input.Name)
	if err != nil {
		return nil, err
	}

	bar := &domain.Bar{
		ID:          input.ID,
		Name:        name,
		Address:     optionalText(input.Address),
		Description: optionalText(input.Description),
	}

	if err := s.repo.Update(ctx, bar); err != nil {
		return nil, err
	}
	return bar, nil
}

// Delete refuses with ErrBarInUse while votes or visits still reference the bar.
func (s *barService) Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error) {
	if id == uuid.Nil {
		return nil, domain.ErrBarNotFound
	}
	return s.repo.Delete(ctx, id)
}

func validateBarName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxBarNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", domain.ErrInvalidInput, maxBarNameLength)
	}
	return name, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
