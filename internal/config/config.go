package config

import (
	"fmt"
	"time"

	"github.com/guimove/pewfit/internal/model"
)

// Config is the top-level configuration for pewfit.
type Config struct {
	Seating SeatingConfig `mapstructure:"seating" yaml:"seating"`
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Compare CompareConfig `mapstructure:"compare" yaml:"compare"`
}

// SeatingConfig controls household spacing and the venue head-count limit.
type SeatingConfig struct {
	// Margin is the number of empty seats between households. Ignored when
	// both SeparationFeet and SeatWidthInches are set.
	Margin          int     `mapstructure:"margin" yaml:"margin"`
	SeparationFeet  float64 `mapstructure:"separation_feet" yaml:"separation_feet"`
	SeatWidthInches float64 `mapstructure:"seat_width_inches" yaml:"seat_width_inches"`
	MaxCapacity     int     `mapstructure:"max_capacity" yaml:"max_capacity"` // 0 = unlimited
	ReservedSeats   int     `mapstructure:"reserved_seats" yaml:"reserved_seats"`
	SkipOptimize    bool    `mapstructure:"skip_optimize" yaml:"skip_optimize"`
}

// InputConfig names the household and pew CSV files.
type InputConfig struct {
	Households string `mapstructure:"households" yaml:"households"`
	Pews       string `mapstructure:"pews" yaml:"pews"`
}

// OutputConfig selects the report format and destination.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"` // empty = stdout
}

// ServerConfig configures the HTTP upload service.
type ServerConfig struct {
	Addr           string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CompareConfig configures margin comparison runs.
type CompareConfig struct {
	Margins     []int `mapstructure:"margins" yaml:"margins"`
	Parallelism int   `mapstructure:"parallelism" yaml:"parallelism"`
	TopN        int   `mapstructure:"top_n" yaml:"top_n"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Seating: SeatingConfig{
			Margin: 4,
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    30 * time.Second,
			RequestTimeout: 60 * time.Second,
			MaxUploadBytes: 10 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Compare: CompareConfig{
			Margins: []int{0, 1, 2, 3, 4, 5, 6},
			TopN:    5,
		},
	}
}

// Validate checks the config for consistency.
func (c *Config) Validate() error {
	s := c.Seating
	if s.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %d", s.Margin)
	}
	if s.SeparationFeet < 0 {
		return fmt.Errorf("separation_feet must be non-negative, got %v", s.SeparationFeet)
	}
	if s.SeatWidthInches < 0 {
		return fmt.Errorf("seat_width_inches must be non-negative, got %v", s.SeatWidthInches)
	}
	if s.SeparationFeet > 0 && s.SeatWidthInches == 0 {
		return fmt.Errorf("seat_width_inches is required when separation_feet is set")
	}
	if s.MaxCapacity < 0 {
		return fmt.Errorf("max_capacity must be non-negative, got %d", s.MaxCapacity)
	}
	if s.ReservedSeats < 0 {
		return fmt.Errorf("reserved_seats must be non-negative, got %d", s.ReservedSeats)
	}
	if s.MaxCapacity > 0 && s.ReservedSeats > s.MaxCapacity {
		return fmt.Errorf("reserved_seats (%d) cannot exceed max_capacity (%d)", s.ReservedSeats, s.MaxCapacity)
	}

	validFormats := map[string]bool{"csv": true, "table": true, "json": true, "yaml": true, "markdown": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output format must be csv, table, json, yaml, or markdown, got %q", c.Output.Format)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log level must be debug, info, warn, or error, got %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}

	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative, got %v", c.Server.RequestTimeout)
	}

	for _, m := range c.Compare.Margins {
		if m < 0 {
			return fmt.Errorf("compare margins must be non-negative, got %d", m)
		}
	}
	if c.Compare.Parallelism < 0 {
		return fmt.Errorf("compare parallelism must be non-negative, got %d", c.Compare.Parallelism)
	}
	if c.Compare.TopN <= 0 {
		c.Compare.TopN = 5
	}
	return nil
}

// EffectiveMargin returns the seat margin for a run: derived from the
// separation distance when both distances are set, otherwise Margin.
func (s SeatingConfig) EffectiveMargin() int {
	if s.SeparationFeet > 0 && s.SeatWidthInches > 0 {
		return model.MarginForSeparation(s.SeparationFeet, s.SeatWidthInches)
	}
	return s.Margin
}

// CapacityLimit returns the head count available for reservations and
// whether a limit applies at all.
func (s SeatingConfig) CapacityLimit() (int, bool) {
	if s.MaxCapacity == 0 {
		return 0, false
	}
	return s.MaxCapacity - s.ReservedSeats, true
}
