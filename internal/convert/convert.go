// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs braille converters over files: it checks inputs,
// derives output paths, writes outputs atomically, records each run in the
// history store, and summarizes batches.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/pdiddy/braille-convert/pkg/types"
)

var (
	// ErrMissingFile is returned when an input path does not name a regular file.
	ErrMissingFile = errors.New("input file not found")
	// ErrSameOutput is returned when a derived output path would overwrite the input.
	ErrSameOutput = errors.New("output path equals input path")
)

// Converter transforms the contents of one input file. BES decoders and text
// transliterators implement this interface.
type Converter interface {
	// Name identifies the conversion in logs and history (e.g. "bes2brf").
	Name() string
	// Ext is the extension given to derived output paths.
	Ext() string
	// Convert reads all of src and writes the converted output to w.
	Convert(src []byte, w io.Writer) (Report, error)
}

// Report holds what a converter produced.
type Report struct {
	Lines   int
	Pages   int
	Ignored int
	Unknown int
}

// Recorder persists conversion records. The history store implements it.
type Recorder interface {
	Record(ctx context.Context, c types.Conversion) error
	// Unchanged reports whether input was last converted by converter from
	// a file with the same size and modification time.
	Unchanged(ctx context.Context, converter, input string, size int64, modTime time.Time) (bool, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Runner applies one Converter to files.
type Runner struct {
	Fs        afero.Fs
	Converter Converter
	Config    types.ConvertConfig
	// History is optional; nil disables recording and skipping.
	History Recorder
	// Out receives one status line per input.
	Out io.Writer
}

// NewRunner returns a Runner on the OS filesystem writing status to out.
func NewRunner(c Converter, cfg types.ConvertConfig, history Recorder, out io.Writer) *Runner {
	return &Runner{
		Fs:        afero.NewOsFs(),
		Converter: c,
		Config:    cfg,
		History:   history,
		Out:       out,
	}
}

// OutputPath derives the output path for input by replacing its extension
// with ext. A non-empty outputDir replaces the input's directory.
func OutputPath(input, ext, outputDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ext
	dir := filepath.Dir(input)
	if outputDir != "" {
		dir = outputDir
	}
	out := filepath.Join(dir, base)
	if filepath.Clean(out) == filepath.Clean(input) {
		return "", fmt.Errorf("%w: %s", ErrSameOutput, input)
	}
	return out, nil
}

// ConvertFile converts input into output. An empty output is derived from
// input. Nothing is written unless the conversion succeeds.
func (r *Runner) ConvertFile(ctx context.Context, input, output string) (types.Conversion, error) {
	rec, err := r.convert(ctx, input, output, false)
	r.report(rec, err)
	return rec, err
}

func (r *Runner) convert(ctx context.Context, input, output string, skipUnchanged bool) (types.Conversion, error) {
	rec := types.Conversion{
		Converter:  r.Converter.Name(),
		InputPath:  input,
		OutputPath: output,
		Status:     types.ConversionFailed,
	}

	info, err := r.Fs.Stat(input)
	if err != nil || info.IsDir() {
		return rec, fmt.Errorf("%w: %s", ErrMissingFile, input)
	}
	rec.InputSize = info.Size()
	rec.InputModTime = info.ModTime().UTC()

	if output == "" {
		output, err = OutputPath(input, r.Converter.Ext(), r.Config.OutputDir)
		if err != nil {
			return rec, err
		}
		rec.OutputPath = output
	}

	if skipUnchanged && r.History != nil && !r.Config.Force {
		same, err := r.History.Unchanged(ctx, rec.Converter, input, rec.InputSize, rec.InputModTime)
		if err != nil {
			return rec, fmt.Errorf("checking history: %w", err)
		}
		if exists, _ := afero.Exists(r.Fs, output); same && exists {
			rec.Status = types.ConversionSkipped
			return rec, nil
		}
	}

	src, err := afero.ReadFile(r.Fs, input)
	if err != nil {
		return rec, fmt.Errorf("reading %s: %w", input, err)
	}

	var out bytes.Buffer
	rep, err := r.Converter.Convert(src, &out)
	if err != nil {
		return rec, r.recordFailure(ctx, rec, fmt.Errorf("converting %s: %w", input, err))
	}
	rec.Lines = rep.Lines
	rec.Pages = rep.Pages
	rec.Ignored = rep.Ignored
	rec.Unknown = rep.Unknown

	if err := writeAtomic(r.Fs, output, out.Bytes()); err != nil {
		return rec, r.recordFailure(ctx, rec, err)
	}

	rec.Status = types.ConversionDone
	rec.ConvertedAt = time.Now().UTC()
	if r.History != nil {
		if err := r.History.Record(ctx, rec); err != nil {
			fmt.Fprintf(r.Out, "warning: recording history for %s: %v\n", input, err)
		}
	}
	return rec, nil
}

// recordFailure stores a failed run and returns err unchanged.
func (r *Runner) recordFailure(ctx context.Context, rec types.Conversion, err error) error {
	if r.History == nil {
		return err
	}
	rec.Error = err.Error()
	rec.ConvertedAt = time.Now().UTC()
	if herr := r.History.Record(ctx, rec); herr != nil {
		fmt.Fprintf(r.Out, "warning: recording history for %s: %v\n", rec.InputPath, herr)
	}
	return err
}

func (r *Runner) report(rec types.Conversion, err error) {
	switch {
	case err != nil:
		fmt.Fprintf(r.Out, "failed:    %s (%v)\n", rec.InputPath, err)
	case rec.Status == types.ConversionSkipped:
		fmt.Fprintf(r.Out, "skipped:   %s (unchanged)\n", rec.InputPath)
	default:
		fmt.Fprintf(r.Out, "converted: %s -> %s (%d lines)\n", rec.InputPath, rec.OutputPath, rec.Lines)
		if rec.Ignored > 0 || rec.Unknown > 0 {
			fmt.Fprintf(r.Out, "           %d ignored bytes, %d unknown cells\n", rec.Ignored, rec.Unknown)
		}
	}
}

// ConvertBatch converts each input to a derived output path, printing
// per-file status and a summary. Inputs recorded as unchanged in the history
// store are skipped unless Config.Force is set.
func (r *Runner) ConvertBatch(ctx context.Context, inputs []string) BatchResult {
	var result BatchResult
	for _, input := range inputs {
		if ctx.Err() != nil {
			fmt.Fprintf(r.Out, "failed:    %s (%v)\n", input, ctx.Err())
			result.Failed++
			continue
		}
		rec, err := r.convert(ctx, input, "", true)
		r.report(rec, err)
		switch {
		case err != nil:
			result.Failed++
		case rec.Status == types.ConversionSkipped:
			result.Skipped++
		default:
			result.Converted++
		}
	}
	fmt.Fprintf(r.Out, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
