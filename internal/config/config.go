package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Output modes for the year buckets.
const (
	OutputSingle   = "single"   // one merged counter for the whole range
	OutputMultiple = "multiple" // one counter per year
)

var yearRe = regexp.MustCompile(`^\d{4}$`)

// Config holds all tool settings, populated from CLI flags with SLF_*
// environment overrides.
type Config struct {
	InputPath      string `mapstructure:"input"`
	SheetName      string `mapstructure:"sheet"`
	HeaderRow      int    `mapstructure:"header-row"`
	TextColumn     string `mapstructure:"text-column"`
	LocationColumn string `mapstructure:"location-column"`
	DateColumn     string `mapstructure:"date-column"`

	OutputMode string `mapstructure:"output-mode"`
	StartYear  string `mapstructure:"start-year"`
	EndYear    string `mapstructure:"end-year"`

	OutputDir     string `mapstructure:"output-dir"`
	ExportResults bool   `mapstructure:"export-results"`
	DedupWindow   int    `mapstructure:"dedup-window"`

	MetricsAddr  string   `mapstructure:"metrics-addr"`
	KafkaBrokers []string `mapstructure:"kafka-brokers"`
	KafkaTopic   string   `mapstructure:"kafka-topic"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Validate checks the configuration and normalizes the output mode. A start
// year equal to the end year forces single-output mode regardless of what was
// requested.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input spreadsheet path is required")
	}
	if c.SheetName == "" {
		return errors.New("sheet name is required")
	}
	if c.HeaderRow < 0 {
		return errors.New("header row must be non-negative")
	}
	if c.TextColumn == "" || c.LocationColumn == "" || c.DateColumn == "" {
		return errors.New("text, location, and date column names are required")
	}

	if !yearRe.MatchString(c.StartYear) {
		return fmt.Errorf("start year %q must be a 4-digit year", c.StartYear)
	}
	if !yearRe.MatchString(c.EndYear) {
		return fmt.Errorf("end year %q must be a 4-digit year", c.EndYear)
	}
	if c.StartYear > c.EndYear {
		return fmt.Errorf("start year %s is after end year %s", c.StartYear, c.EndYear)
	}

	switch c.OutputMode {
	case OutputSingle, OutputMultiple:
	default:
		return fmt.Errorf("output mode %q must be %q or %q", c.OutputMode, OutputSingle, OutputMultiple)
	}
	if c.StartYear == c.EndYear {
		c.OutputMode = OutputSingle
	}

	if c.ExportResults && c.OutputDir == "" {
		return errors.New("output directory is required when exporting results")
	}
	if c.DedupWindow < 0 {
		return errors.New("dedup window must be non-negative")
	}

	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("kafka topic is required when kafka brokers are set")
	}
	if c.KafkaTopic != "" && len(c.KafkaBrokers) == 0 {
		return errors.New("kafka brokers are required when a kafka topic is set")
	}

	return nil
}

// KafkaEnabled reports whether the classification record stream should also
// be published to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaTopic != ""
}
