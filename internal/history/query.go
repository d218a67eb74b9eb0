// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/braille-convert/pkg/types"
)

// QueryOptions filters history listings.
type QueryOptions struct {
	// Converter filters by converter name (e.g. "bes2brf").
	Converter string

	// Status filters by outcome.
	Status types.ConversionStatus

	// InputPath filters by input file.
	InputPath string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List returns matching conversions, most recent first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.Conversion, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT converter, input_path, output_path, input_size, input_mod_time,
			lines, pages, ignored, unknown, status, error, converted_at
		FROM conversions WHERE 1=1`)

	if opts.Converter != "" {
		qb.WriteString(` AND converter = ?`)
		args = append(args, opts.Converter)
	}
	if opts.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(opts.Status))
	}
	if opts.InputPath != "" {
		qb.WriteString(` AND input_path = ?`)
		args = append(args, filepath.Clean(opts.InputPath))
	}
	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var out []types.Conversion
	for rows.Next() {
		var (
			c                    types.Conversion
			outputPath, errMsg   sql.NullString
			modTime, convertedAt sql.NullString
			status               string
		)
		if err := rows.Scan(
			&c.Converter, &c.InputPath, &outputPath, &c.InputSize, &modTime,
			&c.Lines, &c.Pages, &c.Ignored, &c.Unknown, &status, &errMsg, &convertedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		c.OutputPath = outputPath.String
		c.Error = errMsg.String
		c.Status = types.ConversionStatus(status)
		c.InputModTime = parseTime(modTime.String)
		c.ConvertedAt = parseTime(convertedAt.String)
		out = append(out, c)
	}
	return out, rows.Err()
}
