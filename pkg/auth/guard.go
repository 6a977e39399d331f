// Package auth pkg/auth/guard.go implements the session guard: it issues
// and validates session tokens, resolves caller identity and enforces
// role-based authorization.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdash/opsdash/pkg/db"
	"github.com/opsdash/opsdash/pkg/models"
)

const tokenBytes = 32

// Action names a privileged operation checked by Authorize.
type Action string

const (
	ActionSubmitExport   Action = "export:submit"
	ActionListExports    Action = "export:list"
	ActionDownloadExport Action = "export:download"
)

// adminActions lists the actions restricted to the admin role. Read
// operations are gated by session validity alone and never appear here.
var adminActions = map[Action]bool{
	ActionSubmitExport:   true,
	ActionListExports:    true,
	ActionDownloadExport: true,
}

// Guard owns principals and sessions. All state lives in the injected
// store; the guard itself is stateless and safe for concurrent use.
type Guard struct {
	store      db.Service
	sessionTTL time.Duration
	now        func() time.Time
}

// NewGuard creates a session guard over the given store.
func NewGuard(store db.Service, sessionTTL time.Duration) *Guard {
	return &Guard{
		store:      store,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Authenticate validates identity and secret and issues a fresh session.
// An unknown identity and a wrong secret produce the same error so callers
// cannot probe which identities exist.
func (g *Guard) Authenticate(ctx context.Context, email, secret string) (*models.Session, *models.Principal, error) {
	principal, hash, err := g.store.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return nil, nil, models.ErrInvalidCredentials
		}

		return nil, nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) != nil {
		return nil, nil, models.ErrInvalidCredentials
	}

	session, err := g.issueSession(ctx, principal.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, principal, nil
}

// Register creates a new principal and an immediate session.
func (g *Guard) Register(ctx context.Context, displayName, email, secret string, role models.Role) (*models.Session, *models.Principal, error) {
	if !role.Valid() {
		role = models.RoleViewer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	principal := &models.Principal{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		Role:        role,
		CreatedAt:   g.now(),
	}

	if err := g.store.CreatePrincipal(ctx, principal, string(hash)); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, nil, fmt.Errorf("%w: %s", models.ErrDuplicateIdentity, email)
		}

		return nil, nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	session, err := g.issueSession(ctx, principal.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, principal, nil
}

// Validate resolves a token to its principal. Absent, unknown and expired
// tokens all fail with ErrUnauthenticated. Expired sessions are deleted on
// sight so the token cannot be replayed.
func (g *Guard) Validate(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, models.ErrUnauthenticated
	}

	session, err := g.store.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return nil, models.ErrUnauthenticated
		}

		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	if session.Expired(g.now()) {
		_ = g.store.DeleteSession(ctx, token)

		return nil, models.ErrUnauthenticated
	}

	principal, err := g.store.GetPrincipal(ctx, session.PrincipalID)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return nil, models.ErrUnauthenticated
		}

		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return principal, nil
}

// Invalidate removes a session. Idempotent; removing an absent token is
// not an error.
func (g *Guard) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := g.store.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return nil
}

// Authorize checks whether the principal may perform the action.
func (*Guard) Authorize(principal *models.Principal, action Action) error {
	if principal == nil {
		return models.ErrUnauthenticated
	}

	if adminActions[action] && principal.Role != models.RoleAdmin {
		return fmt.Errorf("%w: %s requires admin role", models.ErrForbidden, action)
	}

	return nil
}

func (g *Guard) issueSession(ctx context.Context, principalID string) (*models.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	now := g.now()
	session := &models.Session{
		Token:       token,
		PrincipalID: principalID,
		IssuedAt:    now,
		ExpiresAt:   now.Add(g.sessionTTL),
	}

	if err := g.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return session, nil
}

// newToken returns an unguessable opaque token.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
