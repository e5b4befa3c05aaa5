package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is unique per (UserID, BarID, VoteDate).
type Vote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BarID     uuid.UUID `json:"bar_id"`
	VoteDate  Date      `json:"vote_date"`
	CreatedAt time.Time `json:"created_at"`
}

type MyVote struct {
	Vote
	BarName string `json:"bar_name"`
}

// BarTally is one row of the current votes board.
type BarTally struct {
	BarID     uuid.UUID `json:"bar_id"`
	BarName   string    `json:"bar_name"`
	VoteCount int64     `json:"vote_count"`
	Voters    []string  `json:"voters"`
}
