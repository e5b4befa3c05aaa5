package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type mockVoteService struct{ mock.Mock }

func (m *mockVoteService) Cast(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	args := m.Called(ctx, input)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteService) Retract(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	args := m.Called(ctx, input)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteService) Tally(ctx context.Context) ([]domain.BarTally, error) {
	args := m.Called(ctx)
	tally, _ := args.Get(0).([]domain.BarTally)
	return tally, args.Error(1)
}

func (m *mockVoteService) MyVotes(ctx context.Context, userID uuid.UUID) ([]domain.MyVote, error) {
	args := m.Called(ctx, userID)
	votes, _ := args.Get(0).([]domain.MyVote)
	return votes, args.Error(1)
}

type mockVisitService struct{ mock.Mock }

func (m *mockVisitService) Record(ctx context.Context, input ports.RecordVisitInput) (*domain.Visit, error) {
	args := m.Called(ctx, input)
	visit, _ := args.Get(0).(*domain.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitService) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error) {
	args := m.Called(ctx, id, notes)
	visit, _ := args.Get(0).(*domain.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitService) Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	visit, _ := args.Get(0).(*domain.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitService) ListAll(ctx context.Context) ([]*domain.VisitDetail, error) {
	args := m.Called(ctx)
	visits, _ := args.Get(0).([]*domain.VisitDetail)
	return visits, args.Error(1)
}

func (m *mockVisitService) ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error) {
	args := m.Called(ctx, start, end)
	visits, _ := args.Get(0).([]*domain.VisitDetail)
	return visits, args.Error(1)
}

type mockBarService struct{ mock.Mock }

func (m *mockBarService) Create(ctx context.Context, input ports.CreateBarInput) (*domain.Bar, error) {
	args := m.Called(ctx, input)
	bar, _ := args.Get(0).(*domain.Bar)
	return bar, args.Error(1)
}

func (m *mockBarService) List(ctx context.Context) ([]*domain.BarSummary, error) {
	args := m.Called(ctx)
	bars, _ := args.Get(0).([]*domain.BarSummary)
	return bars, args.Error(1)
}

func (m *mockBarService) Get(ctx context.Context, id uuid.UUID) (*domain.BarSummary, error) {
	args := m.Called(ctx, id)
	bar, _ := args.Get(0).(*domain.BarSummary)
	return bar, args.Error(1)
}

func (m *mockBarService) Update(ctx context.Context, input ports.UpdateBarInput) (*domain.Bar, error) {
	args := m.Called(ctx, input)
	bar, _ := args.Get(0).(*domain.Bar)
	return bar, args.Error(1)
}

func (m *mockBarService) Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error) {
	args := m.Called(ctx, id)
	bar, _ := args.Get(0).(*domain.Bar)
	return bar, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*ports.AuthResult)
	return result, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*ports.AuthResult)
	return result, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

// staticVerifier accepts exactly one token.
type staticVerifier struct {
	token  string
	userID uuid.UUID
}

func (v staticVerifier) Verify(token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return v.userID, nil
}
