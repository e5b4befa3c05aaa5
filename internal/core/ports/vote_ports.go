package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
)

// VoteRepository implementations must make Cast atomic: the bar existence check,
// the (user, bar, day) uniqueness check and the insert happen in one transaction.
type VoteRepository interface {
	Cast(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error)
	Retract(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error)
	Tally(ctx context.Context, day domain.Date) ([]domain.BarTally, error)
	ListByUser(ctx context.Context, userID uuid.UUID, day domain.Date) ([]domain.MyVote, error)
}

type VoteInput struct {
	UserID uuid.UUID
	BarID  uuid.UUID
}

type VoteService interface {
	Cast(ctx context.Context, input VoteInput) (*domain.Vote, error)
	Retract(ctx context.Context, input VoteInput) (*domain.Vote, error)
	Tally(ctx context.Context) ([]domain.BarTally, error)
	MyVotes(ctx context.Context, userID uuid.UUID) ([]domain.MyVote, error)
}
