// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings shared by every conversion subcommand.
type ConvertConfig struct {
	// HeaderLength is the size of the BES header region (default 1024).
	HeaderLength int `json:"header_length" yaml:"header_length" mapstructure:"header_length"`

	// OutputDir places derived output files in this directory instead of
	// next to the input. Explicit output paths are used as given.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`

	// Force reconverts inputs the history store reports as unchanged.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// HistoryConfig holds settings for the conversion history store.
type HistoryConfig struct {
	// Enabled turns recording and incremental skipping on (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// DBPath is the SQLite database file (default ".braille-convert/history.db").
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`

	// MaxResults is the default number of records listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups all configuration sections.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert" mapstructure:"convert"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}
