/*
 * config.go, part of miguitas.
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

//Package config loads the settings of the miguitas binary: built-in defaults,
//then an optional YAML file, then MIGUITAS_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//Config holds every setting of the process.
type Config struct {
	Environment string         `yaml:"environment" validate:"oneof=production development"`
	Logging     LoggingConfig  `yaml:"logging"`
	Metrics     MetricsConfig  `yaml:"metrics"`
	Snapshot    SnapshotConfig `yaml:"snapshot"`
	Server      ServerConfig   `yaml:"server"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

//MetricsConfig controls the Prometheus endpoint. Addr is only needed
//when the endpoint is enabled.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"omitempty,hostname_port"`
	Path    string `yaml:"path" validate:"required,startswith=/"`
}

//SnapshotConfig says where save_session and load_session keep their files.
type SnapshotConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

type ServerConfig struct {
	Name string `yaml:"name" validate:"required"`
}

//Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Environment: "production",
		Logging:     LoggingConfig{Level: "info"},
		Metrics:     MetricsConfig{Enabled: false, Addr: "127.0.0.1:9464", Path: "/metrics"},
		Snapshot:    SnapshotConfig{Dir: "."},
		Server:      ServerConfig{Name: "miguitas"},
	}
}

var validate = validator.New()

//Load reads the settings. An empty path skips the file.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

//LoadWith is Load with a custom environment lookup.
func LoadWith(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("MIGUITAS_ENV", &cfg.Environment)
	str("MIGUITAS_LOG_LEVEL", &cfg.Logging.Level)
	str("MIGUITAS_METRICS_ADDR", &cfg.Metrics.Addr)
	str("MIGUITAS_METRICS_PATH", &cfg.Metrics.Path)
	str("MIGUITAS_SNAPSHOT_DIR", &cfg.Snapshot.Dir)
	str("MIGUITAS_SERVER_NAME", &cfg.Server.Name)
	if v, ok := lookup("MIGUITAS_METRICS_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MIGUITAS_METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = b
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	return nil
}

//Validate checks the settings, reporting every bad field at once.
func (c *Config) Validate() error {
	var msgs []string
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		msgs = append(msgs, "config.metrics.addr is required when metrics are enabled")
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be a host:port address", field)
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
