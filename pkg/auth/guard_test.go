package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdash/opsdash/pkg/db"
	"github.com/opsdash/opsdash/pkg/models"
)

func newTestGuard(t *testing.T, ttl time.Duration) *Guard {
	t.Helper()

	store, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return NewGuard(store, ttl)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	session, principal, err := guard.Register(ctx, "Admin User", "admin@example.com", "password123", models.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.RoleAdmin, principal.Role)
	assert.Equal(t, "admin@example.com", principal.Email)

	// Fresh session from authenticate with a different token.
	session2, principal2, err := guard.Authenticate(ctx, "admin@example.com", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, session.Token, session2.Token)
	assert.Equal(t, principal.ID, principal2.ID)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	_, _, err := guard.Register(ctx, "One", "dup@example.com", "secret", models.RoleViewer)
	require.NoError(t, err)

	_, _, err = guard.Register(ctx, "Two", "dup@example.com", "other", models.RoleViewer)
	assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
}

func TestAuthenticateFailureShapeDoesNotLeakIdentity(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	_, _, err := guard.Register(ctx, "Known", "known@example.com", "right-secret", models.RoleViewer)
	require.NoError(t, err)

	_, _, wrongSecret := guard.Authenticate(ctx, "known@example.com", "wrong-secret")
	_, _, unknownUser := guard.Authenticate(ctx, "nobody@example.com", "whatever")

	// Same kind, same message: a caller cannot tell which part was wrong.
	require.Error(t, wrongSecret)
	require.Error(t, unknownUser)
	assert.ErrorIs(t, wrongSecret, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, models.ErrInvalidCredentials)
	assert.Equal(t, wrongSecret.Error(), unknownUser.Error())
}

func TestValidateToken(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	session, principal, err := guard.Register(ctx, "User", "user@example.com", "secret", models.RoleViewer)
	require.NoError(t, err)

	got, err := guard.Validate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, got.ID)

	_, err = guard.Validate(ctx, "")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, err = guard.Validate(ctx, "not-a-token")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestValidateExpiredSession(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	session, _, err := guard.Register(ctx, "User", "user@example.com", "secret", models.RoleViewer)
	require.NoError(t, err)

	// Move the guard's clock past expiry.
	guard.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = guard.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	// The expired session was discarded, so the token stays dead even if
	// the clock goes back.
	guard.now = time.Now

	_, err = guard.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	guard := newTestGuard(t, time.Hour)
	ctx := context.Background()

	session, _, err := guard.Register(ctx, "User", "user@example.com", "secret", models.RoleViewer)
	require.NoError(t, err)

	require.NoError(t, guard.Invalidate(ctx, session.Token))

	_, err = guard.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	// Second removal of the same token is not an error.
	assert.NoError(t, guard.Invalidate(ctx, session.Token))
	assert.NoError(t, guard.Invalidate(ctx, "never-existed"))
}

func TestAuthorize(t *testing.T) {
	guard := newTestGuard(t, time.Hour)

	admin := &models.Principal{ID: "1", Role: models.RoleAdmin}
	viewer := &models.Principal{ID: "2", Role: models.RoleViewer}

	tests := []struct {
		name      string
		principal *models.Principal
		action    Action
		wantErr   error
	}{
		{"admin submits export", admin, ActionSubmitExport, nil},
		{"admin lists exports", admin, ActionListExports, nil},
		{"admin downloads export", admin, ActionDownloadExport, nil},
		{"viewer submit forbidden", viewer, ActionSubmitExport, models.ErrForbidden},
		{"viewer list forbidden", viewer, ActionListExports, models.ErrForbidden},
		{"viewer download forbidden", viewer, ActionDownloadExport, models.ErrForbidden},
		{"nil principal", nil, ActionSubmitExport, models.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Authorize(tt.principal, tt.action)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
