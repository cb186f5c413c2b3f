// Package config loads uplook settings. Values in the file fill in for
// command line flags that were not given.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoConfig is returned when the configuration source does not exist
var ErrNoConfig = errors.New("configuration file not found")

// Output formats
const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputMsgPack = "msgpack"
)

// Built-in defaults
const (
	DefaultRows        = 5
	DefaultDataChar    = "."
	DefaultCurrentChar = "O"
	DefaultLunarChar   = "#"
	DefaultFullMoonAge = 14.77
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetLocation() (*LocationData, error)
	GetSolar() (*SolarData, error)
	GetLunar() (*LunarData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Location *LocationData `json:"location,omitempty"`
	Solar    SolarData     `json:"solar"`
	Lunar    LunarData     `json:"lunar"`
	Output   string        `json:"output,omitempty"`
}

// LocationData is the default observer position for solar commands
type LocationData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SolarData holds chart settings
type SolarData struct {
	Rows        int    `json:"rows,omitempty"`
	DataChar    string `json:"data_char,omitempty"`
	CurrentChar string `json:"current_char,omitempty"`
}

// LunarData holds moon phase settings
type LunarData struct {
	Char        string  `json:"char,omitempty"`
	FullMoonAge float64 `json:"full_moon_age,omitempty"`
	HalfMoon    bool    `json:"half_moon,omitempty"`
}

// Defaults returns the configuration used when no file is present
func Defaults() *ConfigData {
	cfg := &ConfigData{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset field with its built-in value
func (c *ConfigData) applyDefaults() {
	if c.Solar.Rows == 0 {
		c.Solar.Rows = DefaultRows
	}
	if c.Solar.DataChar == "" {
		c.Solar.DataChar = DefaultDataChar
	}
	if c.Solar.CurrentChar == "" {
		c.Solar.CurrentChar = DefaultCurrentChar
	}
	if c.Lunar.Char == "" {
		c.Lunar.Char = DefaultLunarChar
	}
	if c.Lunar.FullMoonAge == 0 {
		c.Lunar.FullMoonAge = DefaultFullMoonAge
	}
	if c.Output == "" {
		c.Output = OutputText
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/uplook/config.yaml, or the platform
// equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "uplook", "config.yaml"), nil
}
