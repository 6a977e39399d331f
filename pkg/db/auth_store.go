package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/opsdash/opsdash/pkg/models"
)

func (db *DB) CreatePrincipal(ctx context.Context, p *models.Principal, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        INSERT INTO principals (id, display_name, email, role, password_hash, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err := db.ExecContext(ctx, query,
		p.ID, p.DisplayName, p.Email, string(p.Role), passwordHash, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: principal %s", ErrDuplicate, p.Email)
		}

		return fmt.Errorf("%w principal: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        SELECT id, display_name, email, role, created_at
        FROM principals
        WHERE id = ?
    `

	var p models.Principal

	err := db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.DisplayName, &p.Email, &p.Role, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: principal %s", ErrNoRows, id)
	}

	if err != nil {
		return nil, fmt.Errorf("%w principal: %w", errFailedToQuery, err)
	}

	return &p, nil
}

func (db *DB) GetPrincipalByEmail(ctx context.Context, email string) (*models.Principal, string, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        SELECT id, display_name, email, role, password_hash, created_at
        FROM principals
        WHERE email = ?
    `

	var (
		p    models.Principal
		hash string
	)

	err := db.QueryRowContext(ctx, query, email).Scan(
		&p.ID, &p.DisplayName, &p.Email, &p.Role, &hash, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("%w: principal %s", ErrNoRows, email)
	}

	if err != nil {
		return nil, "", fmt.Errorf("%w principal: %w", errFailedToQuery, err)
	}

	return &p, hash, nil
}

func (db *DB) CreateSession(ctx context.Context, s *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        INSERT INTO sessions (token, principal_id, issued_at, expires_at)
        VALUES (?, ?, ?, ?)
    `

	_, err := db.ExecContext(ctx, query, s.Token, s.PrincipalID, s.IssuedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%w session: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) GetSession(ctx context.Context, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        SELECT token, principal_id, issued_at, expires_at
        FROM sessions
        WHERE token = ?
    `

	var s models.Session

	err := db.QueryRowContext(ctx, query, token).Scan(
		&s.Token, &s.PrincipalID, &s.IssuedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRows
	}

	if err != nil {
		return nil, fmt.Errorf("%w session: %w", errFailedToQuery, err)
	}

	return &s, nil
}

// DeleteSession removes a session. Deleting an absent token is not an error;
// invalidation is idempotent.
func (db *DB) DeleteSession(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("%w session: %w", errFailedToDelete, err)
	}

	return nil
}

// isUniqueViolation matches sqlite's constraint error without depending on
// driver-specific error codes.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
