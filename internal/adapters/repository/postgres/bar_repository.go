package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type barRepository struct {
	db *sql.DB
}

func NewBarRepository(db *sql.DB) ports.BarRepository {
	return &barRepository{
		db: db,
	}
}

const selectBarSummary = `
	SELECT b.id, b.name, b.address, b.description, b.created_by, b.created_at,
	       u.username AS created_by_username,
	       COALESCE(v.vote_count, 0) AS current_votes
	FROM bars b
	LEFT JOIN users u ON b.created_by = u.id
	LEFT JOIN (
		SELECT bar_id, COUNT(*) AS vote_count
		FROM votes
		WHERE vote_date = $1
		GROUP BY bar_id
	) v ON b.id = v.bar_id
`

func (r *barRepository) Create(ctx context.Context, bar *domain.Bar) error {
	query := `
		INSERT INTO bars (name, address, description, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, bar.Name, bar.Address, bar.Description, bar.CreatedBy).Scan(&bar.ID, &bar.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return unavailable("insert bar", err)
	}
	return nil
}

func (r *barRepository) List(ctx context.Context, day domain.Date) ([]*domain.BarSummary, error) {
	rows, err := r.db.QueryContext(ctx, selectBarSummary+` ORDER BY b.name, b.id`, day)
	if err != nil {
		return nil, unavailable("list bars", err)
	}
	defer rows.Close()

	var bars []*domain.BarSummary
	for rows.Next() {
		bar, err := scanBarSummary(rows)
		if err != nil {
			return nil, unavailable("scan bar", err)
		}
		bars = append(bars, bar)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate bars", err)
	}
	return bars, nil
}

func (r *barRepository) GetByID(ctx context.Context, id uuid.UUID, day domain.Date) (*domain.BarSummary, error) {
	row := r.db.QueryRowContext(ctx, selectBarSummary+` WHERE b.id = $2`, day, id)
	bar, err := scanBarSummary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBarNotFound
		}
		return nil, unavailable("get bar", err)
	}
	return bar, nil
}

func (r *barRepository) Update(ctx context.Context, bar *domain.Bar) error {
	query := `
		UPDATE bars SET name = $1, address = $2, description = $3
		WHERE id = $4
		RETURNING created_by, created_at
	`
	err := r.db.QueryRowContext(ctx, query, bar.Name, bar.Address, bar.Description, bar.ID).Scan(&bar.CreatedBy, &bar.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBarNotFound
		}
		return unavailable("update bar", err)
	}
	return nil
}

func (r *barRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Bar, error) {
	query := `
		DELETE FROM bars WHERE id = $1
		RETURNING id, name, address, description, created_by, created_at
	`
	var bar domain.Bar
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bar.ID, &bar.Name, &bar.Address, &bar.Description, &bar.CreatedBy, &bar.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBarNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrBarInUse
		}
		return nil, unavailable("delete bar", err)
	}
	return &bar, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBarSummary(row rowScanner) (*domain.BarSummary, error) {
	var bar domain.BarSummary
	err := row.Scan(
		&bar.ID, &bar.Name, &bar.Address, &bar.Description, &bar.CreatedBy, &bar.CreatedAt,
		&bar.CreatedByUsername, &bar.CurrentVotes,
	)
	if err != nil {
		return nil, err
	}
	return &bar, nil
}
