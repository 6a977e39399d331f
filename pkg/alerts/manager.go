/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package alerts pkg/alerts/manager.go tracks the local visibility
// projection over upstream alerts. The upstream source owns the records;
// this package owns which of them the dashboard still shows.
package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsdash/opsdash/pkg/db"
	"github.com/opsdash/opsdash/pkg/models"
	"github.com/opsdash/opsdash/pkg/upstream"
)

// Manager filters the upstream alert feed through a persisted dismissal
// set. Dismissal is a one-shot active -> dismissed transition with no way
// back; a re-activation only ever arrives as a new upstream id.
type Manager struct {
	source upstream.AlertSource
	store  db.Service
	now    func() time.Time
}

// NewManager creates an alert lifecycle manager.
func NewManager(source upstream.AlertSource, store db.Service) *Manager {
	return &Manager{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// List returns the alerts visible under the given status filter, defaulting
// to active only. Dismissed ids never reappear.
func (m *Manager) List(ctx context.Context, status models.AlertStatus) ([]models.Alert, error) {
	if status == "" {
		status = models.AlertActive
	}

	feed, err := m.source.FetchAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	dismissed, err := m.store.ListDismissedAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	visible := make([]models.Alert, 0, len(feed))

	for _, a := range feed {
		if dismissed[a.ID] {
			continue
		}

		if a.Status == status {
			visible = append(visible, a)
		}
	}

	return visible, nil
}

// Dismiss removes the alert from the active projection. Dismissing an
// unknown or already-dismissed id fails with ErrNotFound rather than being
// absorbed: the caller must learn that its view is stale.
func (m *Manager) Dismiss(ctx context.Context, alertID string) error {
	dismissed, err := m.store.IsAlertDismissed(ctx, alertID)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	if dismissed {
		return fmt.Errorf("%w: alert %s", models.ErrNotFound, alertID)
	}

	feed, err := m.source.FetchAlerts(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	if !containsAlert(feed, alertID) {
		return fmt.Errorf("%w: alert %s", models.ErrNotFound, alertID)
	}

	if err := m.store.DismissAlert(ctx, alertID, m.now()); err != nil {
		// A concurrent dismissal of the same id won the race; report the
		// same stale-view condition as the sequential case.
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("%w: alert %s", models.ErrNotFound, alertID)
		}

		return fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return nil
}

func containsAlert(feed []models.Alert, id string) bool {
	for _, a := range feed {
		if a.ID == id {
			return true
		}
	}

	return false
}
