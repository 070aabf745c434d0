// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the settings of the sideslip demo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"gioui.org/x/sideslip/widget"
)

// Config holds the demo settings.
type Config struct {
	// Direction is "left" or "right".
	Direction string
	Scale     float64
	// Offset is the open distance of the main content. Zero
	// selects two thirds of the window width.
	Offset float64
	// Log is the log file. Logging is disabled if empty.
	Log string
}

// Load reads configuration from file and env. Env var overrides use
// prefix SIDESLIP_. The file is path if set, otherwise $SIDESLIP_CONFIG,
// otherwise config.toml in the user config directory. A missing file
// is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("direction", "left")
	v.SetDefault("scale", 0.6)
	v.SetDefault("offset", 0)
	v.SetDefault("log", "")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("SIDESLIP_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sideslip"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIDESLIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// Only a missing default file is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, nil
}

// ParseDirection converts a direction name to a widget.Direction.
func ParseDirection(name string) (widget.Direction, error) {
	switch strings.ToLower(name) {
	case "left":
		return widget.Left, nil
	case "right":
		return widget.Right, nil
	default:
		return 0, fmt.Errorf("config: invalid direction %q", name)
	}
}

// Apply configures s. Nothing is changed if the configuration is
// invalid.
func (c Config) Apply(s *widget.SideSlip) error {
	d, err := ParseDirection(c.Direction)
	if err != nil {
		return err
	}
	if err := s.SetScale(float32(c.Scale)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	s.SetDirection(d)
	if c.Offset != 0 {
		s.SetOffset(float32(c.Offset))
	}
	return nil
}
