package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type voteService struct {
	clock    ports.Clock
	voteRepo ports.VoteRepository
}

func NewVoteService(clock ports.Clock, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		clock:    clock,
		voteRepo: voteRepo,
	}
}

func (s *voteService) Cast(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	if err := validateVoteInput(input); err != nil {
		return nil, err
	}

	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	return s.voteRepo.Cast(ctx, input.UserID, input.BarID, today)
}

func (s *voteService) Retract(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	if err := validateVoteInput(input); err != nil {
		return nil, err
	}

	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	return s.voteRepo.Retract(ctx, input.UserID, input.BarID, today)
}

func (s *voteService) Tally(ctx context.Context) ([]domain.BarTally, error) {
	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	tally, err := s.voteRepo.Tally(ctx, today)
	if err != nil {
		return nil, err
	}
	if tally == nil {
		tally = []domain.BarTally{}
	}
	return tally, nil
}

func (s *voteService) MyVotes(ctx context.Context, userID uuid.UUID) ([]domain.MyVote, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	today, err := s.clock.Today(ctx)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.ListByUser(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if votes == nil {
		votes = []domain.MyVote{}
	}
	return votes, nil
}

func validateVoteInput(input ports.VoteInput) error {
	if input.UserID == uuid.Nil {
		return domain.ErrUnauthenticated
	}
	if input.BarID == uuid.Nil {
		return fmt.Errorf("%w: bar id is required", domain.ErrInvalidInput)
	}
	return nil
}
