package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visit is unique per (BarID, VisitDate). Only Notes changes after creation.
type Visit struct {
	ID        uuid.UUID  `json:"id"`
	BarID     uuid.UUID  `json:"bar_id"`
	VisitDate Date       `json:"visit_date"`
	Notes     *string    `json:"notes"`
	CreatedBy *uuid.UUID `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

type VisitDetail struct {
	Visit
	BarName           string  `json:"bar_name"`
	BarAddress        *string `json:"bar_address"`
	CreatedByUsername *string `json:"created_by_username"`
}
