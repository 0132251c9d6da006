/*
 * config_test.go, part of miguitas.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadWith("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miguitas.yaml")
	yml := `
environment: development
logging:
  level: debug
metrics:
  enabled: true
  addr: "0.0.0.0:9100"
snapshot:
  dir: /var/lib/miguitas
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := LoadWith(path, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0.0.0.0:9100", cfg.Metrics.Addr)
	assert.Equal(t, "/metrics", cfg.Metrics.Path, "fields missing from the file keep their default")
	assert.Equal(t, "/var/lib/miguitas", cfg.Snapshot.Dir)

	cfg, err = LoadWith(path, env(map[string]string{
		"MIGUITAS_LOG_LEVEL":       "WARN",
		"MIGUITAS_METRICS_ENABLED": "false",
		"MIGUITAS_SNAPSHOT_DIR":    "/tmp/snaps",
	}))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/tmp/snaps", cfg.Snapshot.Dir)
}

func TestInvalid(t *testing.T) {
	_, err := LoadWith("", env(map[string]string{"MIGUITAS_LOG_LEVEL": "loud"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.logging.level must be one of")

	_, err = LoadWith("", env(map[string]string{
		"MIGUITAS_METRICS_ENABLED": "true",
		"MIGUITAS_METRICS_ADDR":    "not an address",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:port")

	_, err = LoadWith("", env(map[string]string{"MIGUITAS_METRICS_ENABLED": "maybe"}))
	require.Error(t, err)

	_, err = LoadWith(filepath.Join(t.TempDir(), "absent.yaml"), env(nil))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("logging: [1, 2"), 0o644))
	_, err = LoadWith(bad, env(nil))
	require.Error(t, err)
}
