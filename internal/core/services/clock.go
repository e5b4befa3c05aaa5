package services

import (
	"context"
	"time"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

// LocalClock derives today from the process clock in a fixed location, so every
// caller shares the same day boundary regardless of its own timezone.
type LocalClock struct {
	now func() time.Time
	loc *time.Location
}

func NewLocalClock(loc *time.Location, now func() time.Time) ports.Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &LocalClock{now: now, loc: loc}
}

func (c *LocalClock) Today(_ context.Context) (domain.Date, error) {
	return domain.DateOf(c.now().In(c.loc)), nil
}

// FixedClock always reports the same day.
type FixedClock struct {
	Day domain.Date
}

func (c FixedClock) Today(_ context.Context) (domain.Date, error) {
	return c.Day, nil
}
