package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

func ptr(s string) *string { return &s }

func TestVisitService_Record(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)

	userID, barID := uuid.New(), uuid.New()
	day := domain.Date{Year: 2024, Month: time.March, Day: 15}

	repo.On("Record", mock.Anything, mock.MatchedBy(func(v *domain.Visit) bool {
		return v.BarID == barID && v.VisitDate == day && v.Notes != nil && *v.Notes == "live band" &&
			v.CreatedBy != nil && *v.CreatedBy == userID
	})).Return(nil).Once()

	visit, err := svc.Record(context.Background(), ports.RecordVisitInput{
		BarID:     barID,
		VisitDate: day,
		Notes:     ptr("  live band "),
		CreatedBy: userID,
	})

	require.NoError(t, err)
	assert.Equal(t, day, visit.VisitDate)
	repo.AssertExpectations(t)
}

func TestVisitService_RecordBlankNotesStoredAsNull(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)

	repo.On("Record", mock.Anything, mock.MatchedBy(func(v *domain.Visit) bool {
		return v.Notes == nil
	})).Return(nil).Once()

	_, err := svc.Record(context.Background(), ports.RecordVisitInput{
		BarID:     uuid.New(),
		VisitDate: testDay,
		Notes:     ptr("   "),
		CreatedBy: uuid.New(),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestVisitService_RecordValidation(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)

	_, err := svc.Record(context.Background(), ports.RecordVisitInput{BarID: uuid.New(), VisitDate: testDay})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Record(context.Background(), ports.RecordVisitInput{VisitDate: testDay, CreatedBy: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Record(context.Background(), ports.RecordVisitInput{BarID: uuid.New(), CreatedBy: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestVisitService_RecordConflict(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)
	repo.On("Record", mock.Anything, mock.Anything).Return(domain.ErrAlreadyVisited).Once()

	_, err := svc.Record(context.Background(), ports.RecordVisitInput{
		BarID:     uuid.New(),
		VisitDate: testDay,
		CreatedBy: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyVisited)
}

func TestVisitService_ListByRange(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)

	start := domain.Date{Year: 2024, Month: time.January, Day: 2}
	end := domain.Date{Year: 2024, Month: time.January, Day: 4}
	want := []*domain.VisitDetail{{Visit: domain.Visit{VisitDate: end}}}
	repo.On("ListByRange", mock.Anything, start, end).Return(want, nil).Once()

	got, err := svc.ListByRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	inverted, err := svc.ListByRange(context.Background(), end, start)
	require.NoError(t, err)
	assert.NotNil(t, inverted)
	assert.Empty(t, inverted)

	_, err = svc.ListByRange(context.Background(), domain.Date{}, end)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNumberOfCalls(t, "ListByRange", 1)
}

func TestVisitService_UpdateNotesAndDelete(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)
	id := uuid.New()

	repo.On("UpdateNotes", mock.Anything, id, ptr("dj set")).Return(&domain.Visit{ID: id, Notes: ptr("dj set")}, nil).Once()
	repo.On("UpdateNotes", mock.Anything, id, (*string)(nil)).Return(&domain.Visit{ID: id}, nil).Once()
	repo.On("Delete", mock.Anything, id).Return(nil, domain.ErrVisitNotFound).Once()

	visit, err := svc.UpdateNotes(context.Background(), id, ptr(" dj set "))
	require.NoError(t, err)
	assert.Equal(t, "dj set", *visit.Notes)

	visit, err = svc.UpdateNotes(context.Background(), id, ptr(""))
	require.NoError(t, err)
	assert.Nil(t, visit.Notes)

	_, err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrVisitNotFound)

	_, err = svc.UpdateNotes(context.Background(), uuid.Nil, nil)
	assert.ErrorIs(t, err, domain.ErrVisitNotFound)

	repo.AssertExpectations(t)
}

func TestVisitService_ListAllNeverNil(t *testing.T) {
	repo := &mockVisitRepository{}
	svc := NewVisitService(repo)
	repo.On("ListAll", mock.Anything).Return(nil, nil).Once()

	visits, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, visits)
}
