package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
)

type mockVoteRepository struct{ mock.Mock }

func (m *mockVoteRepository) Cast(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error) {
	args := m.Called(ctx, userID, barID, day)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteRepository) Retract(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error) {
	args := m.Called(ctx, userID, barID, day)
	vote, _ := args.Get(0).(*domain.Vote)
	return vote, args.Error(1)
}

func (m *mockVoteRepository) Tally(ctx context.Context, day domain.Date) ([]domain.BarTally, error) {
	args := m.Called(ctx, day)
	tally, _ := args.Get(0).([]domain.BarTally)
	return tally, args.Error(1)
}

func (m *mockVoteRepository) ListByUser(ctx context.Context, userID uuid.UUID, day domain.Date) ([]domain.MyVote, error) {
	args := m.Called(ctx, userID, day)
	votes, _ := args.Get(0).([]domain.MyVote)
	return votes, args.Error(1)
}

type mockVisitRepository struct{ mock.Mock }

func (m *mockVisitRepository) Record(ctx context.Context, visit *domain.Visit) error {
	return m.Called(ctx, visit).Error(0)
}

func (m *mockVisitRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error) {
	args := m.Called(ctx, id, notes)
	visit, _ := args.Get(0).(*domain.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	visit, _ := args.Get(0).(*domain.Visit)
	return visit, args.Error(1)
}

func (m *mockVisitRepository) ListAll(ctx context.Context) ([]*domain.VisitDetail, error) {
	args := m.Called(ctx)
	visits, _ := args.Get(0).([]*domain.VisitDetail)
	return visits, args.Error(1)
}

func (m *mockVisitRepository) ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error) {
	args := m.Called(ctx, start, end)
	visits, _ := args.Get(0).([]*domain.VisitDetail)
	return visits, args.Error(1)
}

type mockBarRepository struct{ mock.Mock }

func (m *mockBarRepository) Create(ctx context.Context, bar *domain.Bar) error {
	return m.Called(ctx, bar).Error(0)
}

func (m *mockBarRepository) List(ctx context.Context, day domain.Date) ([]*domain.BarSummary, error) {
	args := m.Called(ctx, day)
	bars, _ := args.Get(0).([]*domain.BarSummary)
	return bars, args.Error(1)
}

func (m *mockBarRepository) GetByID(ctx context.Context, id uuid.UUID, day domain.Date) (*domain.BarSummary, error) {
	args := m.Called(ctx, id, day)
	bar, _ := args.Get(0).(*domain.BarSummary)
	return bar, args.Error(1)
}

func (m *mockBarRepository) Update(ctx context.Context, bar *domain.Bar) error {
	return m.Called(ctx, bar).Error(0)
}

func (m *mockBarRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error) {
	args := m.Called(ctx, id)
	bar, _ := args.Get(0).(*domain.Bar)
	return bar, args.Error(1)
}

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(hash, password string) bool {
	return m.Called(hash, password).Bool(0)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) Issue(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

// countingClock records how often Today is asked.
type countingClock struct {
	day   domain.Date
	err   error
	calls int
}

func (c *countingClock) Today(_ context.Context) (domain.Date, error) {
	c.calls++
	return c.day, c.err
}
