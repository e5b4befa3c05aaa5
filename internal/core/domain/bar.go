package domain

import (
	"time"

	"github.com/google/uuid"
)

type Bar struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     *string    `json:"address"`
	Description *string    `json:"description"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BarSummary is a bar as listed to users, with today's vote count.
type BarSummary struct {
	Bar
	CreatedByUsername *string `json:"created_by_username"`
	CurrentVotes      int64   `json:"current_votes"`
}
