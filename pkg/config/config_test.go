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

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidateFillsDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"listen_addr": ":8081",
		"db_path": "/tmp/opsdash.db",
		"artifact_dir": "/tmp/artifacts"
	}`)

	var cfg ServerConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, Duration(12*time.Hour), cfg.SessionTTL)
	assert.Equal(t, Duration(30*time.Second), cfg.StreamInterval)
	assert.Equal(t, Duration(30*24*time.Hour), cfg.CleanupAge)
	assert.Equal(t, 2, cfg.ExportWorkers)
	assert.Equal(t, 120, cfg.MetricsHistory)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Equal(t, 10, cfg.LoginPerMinute)
}

func TestLoadAndValidateExplicitValues(t *testing.T) {
	path := writeConfig(t, `{
		"listen_addr": ":9090",
		"db_path": "/tmp/opsdash.db",
		"artifact_dir": "/tmp/artifacts",
		"upstream_addr": "http://upstream:3001/api",
		"session_ttl": "1h",
		"stream_interval": "5s",
		"export_workers": 4,
		"metrics_history": 60
	}`)

	var cfg ServerConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "http://upstream:3001/api", cfg.UpstreamAddr)
	assert.Equal(t, Duration(time.Hour), cfg.SessionTTL)
	assert.Equal(t, Duration(5*time.Second), cfg.StreamInterval)
	assert.Equal(t, 4, cfg.ExportWorkers)
	assert.Equal(t, 60, cfg.MetricsHistory)
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want error
	}{
		{name: "missing listen addr", cfg: ServerConfig{DBPath: "x", ArtifactDir: "y"}, want: errMissingListenAddr},
		{name: "missing db path", cfg: ServerConfig{ListenAddr: ":1", ArtifactDir: "y"}, want: errMissingDBPath},
		{name: "missing artifact dir", cfg: ServerConfig{ListenAddr: ":1", DBPath: "x"}, want: errMissingArtifactDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), tt.want)
		})
	}
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, Duration(time.Second), d)

	err := json.Unmarshal([]byte(`"not-a-duration"`), &d)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`true`), &d)
	assert.ErrorIs(t, err, errInvalidDuration)
}

func TestLoadFileMissing(t *testing.T) {
	var cfg ServerConfig

	err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), &cfg)
	assert.Error(t, err)
}
