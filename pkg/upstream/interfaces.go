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

// Package upstream pkg/upstream/interfaces.go

//go:generate mockgen -destination=mock_upstream.go -package=upstream github.com/opsdash/opsdash/pkg/upstream MetricsSource,LogSource,AlertSource,ActivitySource

package upstream

import (
	"context"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

// MetricsSource produces point-in-time utilization snapshots. A snapshot is
// all-or-nothing: implementations never return a partially populated value.
type MetricsSource interface {
	Sample(ctx context.Context) (*models.MetricsSnapshot, error)
}

// LogSource retrieves the log corpus for entries at or after since.
type LogSource interface {
	FetchLogs(ctx context.Context, since time.Time) ([]models.LogEntry, error)
}

// AlertSource retrieves the authoritative alert records. The local dismissal
// projection is layered on top by the alert manager, not here.
type AlertSource interface {
	FetchAlerts(ctx context.Context) ([]models.Alert, error)
}

// ActivitySource retrieves the dashboard activity feed.
type ActivitySource interface {
	FetchActivity(ctx context.Context) ([]models.Activity, error)
}

// Sources bundles the provider set handed to the facade. A real backend
// integration is a drop-in implementation of these four interfaces.
type Sources struct {
	Metrics  MetricsSource
	Logs     LogSource
	Alerts   AlertSource
	Activity ActivitySource
}
