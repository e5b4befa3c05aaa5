package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every *.up.sql migration in name order inside one transaction.
// Migrations are idempotent, so running it on an up-to-date schema is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := MigrationNames(".up.sql")
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin migration transaction", err)
	}
	defer tx.Rollback()

	for _, name := range names {
		content, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit migrations", err)
	}
	return nil
}

// MigrationNames lists embedded migration files ending in suffix, sorted by name.
func MigrationNames(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ApplyMigration runs the single embedded migration whose file name contains name,
// e.g. "create_votes.up" or "000003_create_votes.down".
func ApplyMigration(ctx context.Context, db *sql.DB, name string) (string, error) {
	names, err := MigrationNames(".sql")
	if err != nil {
		return "", err
	}

	var matched []string
	for _, n := range names {
		if strings.Contains(n, name) {
			matched = append(matched, n)
		}
	}
	switch len(matched) {
	case 0:
		return "", fmt.Errorf("migration file not found")
	case 1:
	default:
		return "", fmt.Errorf("migration name %q is ambiguous: %s", name, strings.Join(matched, ", "))
	}

	content, err := migrationsFS.ReadFile("migrations/" + matched[0])
	if err != nil {
		return "", fmt.Errorf("failed to read migration %s: %w", matched[0], err)
	}
	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return "", fmt.Errorf("failed to execute SQL file: %w", err)
	}
	return matched[0], nil
}
