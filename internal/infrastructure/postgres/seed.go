package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedUser inserts a user unless the email already exists.
// It reports whether a new row was written.
func SeedUser(ctx context.Context, db *sql.DB, email, passwordHash string) (bool, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
	`, email, passwordHash)
	if err != nil {
		return false, fmt.Errorf("failed to seed user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
