// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for braille-convert: the
// conversion record written to the history store and the configuration
// loaded from flags, environment, and the config file.
package types

import "time"

// ConversionStatus indicates the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// Conversion records one run of a converter over one input file.
type Conversion struct {
	// Converter names the conversion (e.g. "bes2brf", "nabcc2unicode").
	Converter string `json:"converter" yaml:"converter"`

	// InputPath is the source file as given on the command line.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the file written, or that would have been written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// InputSize and InputModTime identify the input revision that was converted.
	InputSize    int64     `json:"input_size" yaml:"input_size"`
	InputModTime time.Time `json:"input_mod_time" yaml:"input_mod_time"`

	// Lines is the number of lines written.
	Lines int `json:"lines" yaml:"lines"`

	// Pages, Ignored and Unknown are BES decoder counts; zero for text conversions.
	Pages   int `json:"pages,omitempty" yaml:"pages,omitempty"`
	Ignored int `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Unknown int `json:"unknown,omitempty" yaml:"unknown,omitempty"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is ConversionFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
