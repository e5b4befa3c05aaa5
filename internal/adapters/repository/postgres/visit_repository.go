package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
)

type visitRepository struct {
	db *sql.DB
}

func NewVisitRepository(db *sql.DB) ports.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

const selectVisitDetail = `
	SELECT v.id, v.bar_id, v.visit_date, v.notes, v.created_by, v.created_at,
	       b.name AS bar_name, b.address AS bar_address,
	       u.username AS created_by_username
	FROM visits v
	JOIN bars b ON v.bar_id = b.id
	LEFT JOIN users u ON v.created_by = u.id
`

const visitColumns = `id, bar_id, visit_date, notes, created_by, created_at`

func (r *visitRepository) Record(ctx context.Context, visit *domain.Visit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	if err := lockBar(ctx, tx, visit.BarID); err != nil {
		return err
	}

	query := `
		INSERT INTO visits (bar_id, visit_date, notes, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query, visit.BarID, visit.VisitDate, visit.Notes, visit.CreatedBy).Scan(&visit.ID, &visit.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyVisited
		case isForeignKeyViolation(err) && constraintOf(err) == "visits_created_by_fkey":
			return domain.ErrUserNotFound
		case isForeignKeyViolation(err):
			return domain.ErrBarNotFound
		}
		return unavailable("save visit", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit visit", err)
	}
	return nil
}

func (r *visitRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*domain.Visit, error) {
	query := `UPDATE visits SET notes = $1 WHERE id = $2 RETURNING ` + visitColumns
	visit, err := scanVisit(r.db.QueryRowContext(ctx, query, notes, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, unavailable("update visit", err)
	}
	return visit, nil
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	query := `DELETE FROM visits WHERE id = $1 RETURNING ` + visitColumns
	visit, err := scanVisit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, unavailable("delete visit", err)
	}
	return visit, nil
}

func (r *visitRepository) ListAll(ctx context.Context) ([]*domain.VisitDetail, error) {
	rows, err := r.db.QueryContext(ctx, selectVisitDetail+` ORDER BY v.visit_date DESC, b.name`)
	if err != nil {
		return nil, unavailable("list visits", err)
	}
	defer rows.Close()

	return scanVisitDetails(rows)
}

// ListByRange is inclusive on both ends and ordered newest first, like ListAll.
func (r *visitRepository) ListByRange(ctx context.Context, start, end domain.Date) ([]*domain.VisitDetail, error) {
	query := selectVisitDetail + `
		WHERE v.visit_date BETWEEN $1 AND $2
		ORDER BY v.visit_date DESC, b.name
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, unavailable("list visits by range", err)
	}
	defer rows.Close()

	return scanVisitDetails(rows)
}

func scanVisit(row rowScanner) (*domain.Visit, error) {
	var v domain.Visit
	if err := row.Scan(&v.ID, &v.BarID, &v.VisitDate, &v.Notes, &v.CreatedBy, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVisitDetails(rows *sql.Rows) ([]*domain.VisitDetail, error) {
	visits := []*domain.VisitDetail{}
	for rows.Next() {
		var v domain.VisitDetail
		err := rows.Scan(
			&v.ID, &v.BarID, &v.VisitDate, &v.Notes, &v.CreatedBy, &v.CreatedAt,
			&v.BarName, &v.BarAddress, &v.CreatedByUsername,
		)
		if err != nil {
			return nil, unavailable("scan visit", err)
		}
		visits = append(visits, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate visits", err)
	}
	return visits, nil
}
