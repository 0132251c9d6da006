/*
 * logging_test.go, part of miguitas.
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

package logging

import (
	"testing"

	"github.com/AmaiDonatsu/miguitas/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, Level("debug"))
	assert.Equal(t, zap.WarnLevel, Level("warn"))
	assert.Equal(t, zap.ErrorLevel, Level("error"))
	assert.Equal(t, zap.InfoLevel, Level("info"))
	assert.Equal(t, zap.InfoLevel, Level("whatever"))
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "warn"
	l, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))

	cfg.Environment = "development"
	cfg.Logging.Level = "debug"
	l, err = New(cfg)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
