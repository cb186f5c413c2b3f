package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

type configYAML struct {
	Location *locationYAML `yaml:"location,omitempty"`
	Solar    solarYAML     `yaml:"solar,omitempty"`
	Lunar    lunarYAML     `yaml:"lunar,omitempty"`
	Output   string        `yaml:"output,omitempty"`
}

type locationYAML struct {
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

type solarYAML struct {
	Rows        int    `yaml:"rows,omitempty"`
	DataChar    string `yaml:"data_char,omitempty"`
	CurrentChar string `yaml:"current_char,omitempty"`
}

type lunarYAML struct {
	Char        string  `yaml:"char,omitempty"`
	FullMoonAge float64 `yaml:"full_moon_age,omitempty"`
	HalfMoon    bool    `yaml:"half_moon,omitempty"`
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, y.filename)
		}
		return nil, err
	}

	var yamlConfig configYAML
	decoder := yaml.NewDecoder(bytes.NewReader(cfgFile))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlConfig); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", y.filename, err)
	}

	// Convert to our internal format
	config := &ConfigData{
		Solar: SolarData{
			Rows:        yamlConfig.Solar.Rows,
			DataChar:    yamlConfig.Solar.DataChar,
			CurrentChar: yamlConfig.Solar.CurrentChar,
		},
		Lunar: LunarData{
			Char:        yamlConfig.Lunar.Char,
			FullMoonAge: yamlConfig.Lunar.FullMoonAge,
			HalfMoon:    yamlConfig.Lunar.HalfMoon,
		},
		Output: yamlConfig.Output,
	}

	if loc := yamlConfig.Location; loc != nil {
		if loc.Latitude == nil || loc.Longitude == nil {
			return nil, fmt.Errorf("%s: location needs both latitude and longitude", y.filename)
		}
		config.Location = &LocationData{
			Latitude:  *loc.Latitude,
			Longitude: *loc.Longitude,
		}
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", y.filename, err)
	}

	y.config = config
	return config, nil
}

func (c *ConfigData) validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputMsgPack:
	default:
		return fmt.Errorf("unsupported output %q, use text, json or msgpack", c.Output)
	}
	if c.Location != nil {
		if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
			return fmt.Errorf("latitude %v out of range [-90, 90]", c.Location.Latitude)
		}
		if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
			return fmt.Errorf("longitude %v out of range [-180, 180]", c.Location.Longitude)
		}
	}
	if c.Lunar.FullMoonAge < 0 {
		return fmt.Errorf("full_moon_age %v must not be negative", c.Lunar.FullMoonAge)
	}
	return nil
}

func (y *YAMLProvider) loaded() (*ConfigData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config, nil
}

// GetLocation returns the configured location, or nil when none is set
func (y *YAMLProvider) GetLocation() (*LocationData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return cfg.Location, nil
}

// GetSolar returns the chart settings
func (y *YAMLProvider) GetSolar() (*SolarData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Solar, nil
}

// GetLunar returns the moon phase settings
func (y *YAMLProvider) GetLunar() (*LunarData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Lunar, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
