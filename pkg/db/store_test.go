package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdash/opsdash/pkg/models"
)

func newTestDB(t *testing.T) Service {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestPrincipalRoundTrip(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	p := &models.Principal{
		ID:          "p-1",
		DisplayName: "Ada Admin",
		Email:       "ada@example.com",
		Role:        models.RoleAdmin,
		CreatedAt:   time.Now().UTC(),
	}

	require.NoError(t, store.CreatePrincipal(ctx, p, "hash-value"))

	got, err := store.GetPrincipal(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p.Email, got.Email)
	assert.Equal(t, models.RoleAdmin, got.Role)

	byEmail, hash, err := store.GetPrincipalByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "p-1", byEmail.ID)
	assert.Equal(t, "hash-value", hash)
}

func TestCreatePrincipalDuplicateEmail(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	p := &models.Principal{ID: "p-1", DisplayName: "First", Email: "dup@example.com", Role: models.RoleViewer, CreatedAt: time.Now()}
	require.NoError(t, store.CreatePrincipal(ctx, p, "h1"))

	p2 := &models.Principal{ID: "p-2", DisplayName: "Second", Email: "dup@example.com", Role: models.RoleViewer, CreatedAt: time.Now()}
	err := store.CreatePrincipal(ctx, p2, "h2")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGetPrincipalByEmailMissing(t *testing.T) {
	store := newTestDB(t)

	_, _, err := store.GetPrincipalByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestSessionLifecycle(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	p := &models.Principal{ID: "p-1", DisplayName: "Ada", Email: "ada@example.com", Role: models.RoleViewer, CreatedAt: time.Now()}
	require.NoError(t, store.CreatePrincipal(ctx, p, "h"))

	now := time.Now().UTC()
	s := &models.Session{
		Token:       "tok-1",
		PrincipalID: "p-1",
		IssuedAt:    now,
		ExpiresAt:   now.Add(12 * time.Hour),
	}

	require.NoError(t, store.CreateSession(ctx, s))

	got, err := store.GetSession(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", got.PrincipalID)

	require.NoError(t, store.DeleteSession(ctx, "tok-1"))

	_, err = store.GetSession(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNoRows)
}

func makeJob(id string) *models.ExportJob {
	return &models.ExportJob{
		ID:        id,
		Kind:      models.ExportLogs,
		Format:    models.FormatCSV,
		Status:    models.ExportPending,
		Params:    models.ExportParams{TimeRange: "24h", Level: "error"},
		CreatedAt: time.Now().UTC(),
	}
}

func TestExportJobRoundTrip(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.CreateExportJob(ctx, makeJob("j-1")))

	got, err := store.GetExportJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportPending, got.Status)
	assert.Equal(t, "24h", got.Params.TimeRange)
	assert.Equal(t, "error", got.Params.Level)
	assert.Nil(t, got.CompletedAt)
}

func TestExportJobTransitions(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.CreateExportJob(ctx, makeJob("j-1")))

	// Completing a pending job skips the claim and must be refused.
	err := store.CompleteExportJob(ctx, "j-1", "/ref", time.Now())
	assert.ErrorIs(t, err, ErrTransition)

	require.NoError(t, store.ClaimExportJob(ctx, "j-1"))

	// Second claim loses.
	err = store.ClaimExportJob(ctx, "j-1")
	assert.ErrorIs(t, err, ErrTransition)

	require.NoError(t, store.CompleteExportJob(ctx, "j-1", "/ref", time.Now()))

	got, err := store.GetExportJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportCompleted, got.Status)
	assert.Equal(t, "/ref", got.DownloadRef)
	require.NotNil(t, got.CompletedAt)

	// Terminal states never move.
	assert.ErrorIs(t, store.ClaimExportJob(ctx, "j-1"), ErrTransition)
	assert.ErrorIs(t, store.FailExportJob(ctx, "j-1", "late failure", time.Now()), ErrTransition)
}

func TestFailExportJobRecordsCause(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.CreateExportJob(ctx, makeJob("j-1")))
	require.NoError(t, store.ClaimExportJob(ctx, "j-1"))
	require.NoError(t, store.FailExportJob(ctx, "j-1", "upstream unavailable", time.Now()))

	got, err := store.GetExportJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportFailed, got.Status)
	assert.Equal(t, "upstream unavailable", got.Error)
	assert.Empty(t, got.DownloadRef)
}

func TestListExportJobsByStatus(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.CreateExportJob(ctx, makeJob("j-1")))
	require.NoError(t, store.CreateExportJob(ctx, makeJob("j-2")))
	require.NoError(t, store.ClaimExportJob(ctx, "j-2"))

	pending, err := store.ListExportJobsByStatus(ctx, models.ExportPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "j-1", pending[0].ID)

	processing, err := store.ListExportJobsByStatus(ctx, models.ExportProcessing)
	require.NoError(t, err)
	require.Len(t, processing, 1)
	assert.Equal(t, "j-2", processing[0].ID)

	all, err := store.ListExportJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAlertDismissals(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	dismissed, err := store.IsAlertDismissed(ctx, "a-1")
	require.NoError(t, err)
	assert.False(t, dismissed)

	require.NoError(t, store.DismissAlert(ctx, "a-1", time.Now()))

	dismissed, err = store.IsAlertDismissed(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, dismissed)

	err = store.DismissAlert(ctx, "a-1", time.Now())
	assert.ErrorIs(t, err, ErrDuplicate)

	set, err := store.ListDismissedAlerts(ctx)
	require.NoError(t, err)
	assert.True(t, set["a-1"])
	assert.False(t, set["a-2"])
}

func TestCleanOldData(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	p := &models.Principal{ID: "p-1", DisplayName: "Ada", Email: "ada@example.com", Role: models.RoleViewer, CreatedAt: time.Now()}
	require.NoError(t, store.CreatePrincipal(ctx, p, "h"))

	now := time.Now().UTC()

	expired := &models.Session{Token: "tok-old", PrincipalID: "p-1", IssuedAt: now.Add(-24 * time.Hour), ExpiresAt: now.Add(-12 * time.Hour)}
	live := &models.Session{Token: "tok-live", PrincipalID: "p-1", IssuedAt: now, ExpiresAt: now.Add(12 * time.Hour)}

	require.NoError(t, store.CreateSession(ctx, expired))
	require.NoError(t, store.CreateSession(ctx, live))

	require.NoError(t, store.DismissAlert(ctx, "a-old", now.Add(-60*24*time.Hour)))
	require.NoError(t, store.DismissAlert(ctx, "a-new", now))

	require.NoError(t, store.CleanOldData(30*24*time.Hour))

	_, err := store.GetSession(ctx, "tok-old")
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = store.GetSession(ctx, "tok-live")
	assert.NoError(t, err)

	set, err := store.ListDismissedAlerts(ctx)
	require.NoError(t, err)
	assert.False(t, set["a-old"])
	assert.True(t, set["a-new"])
}
