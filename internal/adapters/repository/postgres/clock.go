package postgres

import (
	"context"
	"database/sql"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

// DatabaseClock reads today from the database server's CURRENT_DATE, the one clock
// every API process agrees on.
type DatabaseClock struct {
	db *sql.DB
}

func NewDatabaseClock(db *sql.DB) ports.Clock {
	return &DatabaseClock{db: db}
}

func (c *DatabaseClock) Today(ctx context.Context) (domain.Date, error) {
	var today domain.Date
	if err := c.db.QueryRowContext(ctx, `SELECT CURRENT_DATE`).Scan(&today); err != nil {
		return domain.Date{}, unavailable("read current date", err)
	}
	return today, nil
}
