package ports

import (
	"context"

	"github.com/vncsmyrnk/barvote/internal/core/domain"
)

// Clock is the daily window policy: the single source of "today" for votes and bars.
type Clock interface {
	Today(ctx context.Context) (domain.Date, error)
}
