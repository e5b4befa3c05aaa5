package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Cast locks the bar row against deletion, then inserts; the
// votes_user_bar_day_key constraint turns a concurrent duplicate into ErrAlreadyVoted.
func (r *voteRepository) Cast(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	if err := lockBar(ctx, tx, barID); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO votes (user_id, bar_id, vote_date)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, bar_id, vote_date, created_at
	`
	var vote domain.Vote
	err = tx.QueryRowContext(ctx, query, userID, barID, day).Scan(
		&vote.ID, &vote.UserID, &vote.BarID, &vote.VoteDate, &vote.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrAlreadyVoted
		case isForeignKeyViolation(err) && constraintOf(err) == "votes_user_id_fkey":
			return nil, domain.ErrUserNotFound
		case isForeignKeyViolation(err):
			return nil, domain.ErrBarNotFound
		}
		return nil, unavailable("save vote", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("commit vote", err)
	}
	return &vote, nil
}

func (r *voteRepository) Retract(ctx context.Context, userID, barID uuid.UUID, day domain.Date) (*domain.Vote, error) {
	query := `
		DELETE FROM votes
		WHERE user_id = $1 AND bar_id = $2 AND vote_date = $3
		RETURNING id, user_id, bar_id, vote_date, created_at
	`
	var vote domain.Vote
	err := r.db.QueryRowContext(ctx, query, userID, barID, day).Scan(
		&vote.ID, &vote.UserID, &vote.BarID, &vote.VoteDate, &vote.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, unavailable("delete vote", err)
	}
	return &vote, nil
}

// Tally only returns bars that received votes on day, most voted first and then by
// bar name in byte order.
func (r *voteRepository) Tally(ctx context.Context, day domain.Date) ([]domain.BarTally, error) {
	query := `
		SELECT b.id, b.name, COUNT(v.id) AS vote_count,
		       ARRAY_AGG(u.username ORDER BY u.username) AS voters
		FROM votes v
		JOIN bars b ON b.id = v.bar_id
		JOIN users u ON u.id = v.user_id
		WHERE v.vote_date = $1
		GROUP BY b.id, b.name
		ORDER BY vote_count DESC, b.name COLLATE "C" ASC, b.id
	`
	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, unavailable("tally votes", err)
	}
	defer rows.Close()

	tally := []domain.BarTally{}
	for rows.Next() {
		var t domain.BarTally
		if err := rows.Scan(&t.BarID, &t.BarName, &t.VoteCount, pq.Array(&t.Voters)); err != nil {
			return nil, unavailable("scan tally", err)
		}
		tally = append(tally, t)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate tally", err)
	}
	return tally, nil
}

func (r *voteRepository) ListByUser(ctx context.Context, userID uuid.UUID, day domain.Date) ([]domain.MyVote, error) {
	query := `
		SELECT v.id, v.user_id, v.bar_id, v.vote_date, v.created_at, b.name
		FROM votes v
		JOIN bars b ON v.bar_id = b.id
		WHERE v.user_id = $1 AND v.vote_date = $2
		ORDER BY b.name
	`
	rows, err := r.db.QueryContext(ctx, query, userID, day)
	if err != nil {
		return nil, unavailable("list votes", err)
	}
	defer rows.Close()

	votes := []domain.MyVote{}
	for rows.Next() {
		var v domain.MyVote
		if err := rows.Scan(&v.ID, &v.UserID, &v.BarID, &v.VoteDate, &v.CreatedAt, &v.BarName); err != nil {
			return nil, unavailable("scan vote", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate votes", err)
	}
	return votes, nil
}

// lockBar takes a share lock on the bar for the rest of tx, so it cannot be deleted
// between the existence check and the insert.
func lockBar(ctx context.Context, tx *sql.Tx, barID uuid.UUID) error {
	var exists int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM bars WHERE id = $1 FOR SHARE`, barID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBarNotFound
		}
		return unavailable("check bar", err)
	}
	return nil
}
