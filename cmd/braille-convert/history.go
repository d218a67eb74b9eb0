// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/braille-convert/internal/history"
	"github.com/pdiddy/braille-convert/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and export recorded conversions",
	Long: `History lists conversions recorded in the local history database, most
recent first. Use the export subcommand to write records as YAML or JSON.`,
	RunE: runHistoryList,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded conversions to YAML or JSON",
	Long: `Export writes recorded conversions (or a filtered subset) to stdout or
to the file given with --out.`,
	RunE: runHistoryExport,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), historyOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(cmd.OutOrStdout(), records, jsonOutput)
}

func formatHistory(w io.Writer, records []types.Conversion, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-13s  %-9s  %-6s  %s\n", "When", "Converter", "Status", "Lines", "Input")
	for _, r := range records {
		fmt.Fprintf(w, "%-20s  %-13s  %-9s  %-6d  %s\n",
			r.ConvertedAt.Local().Format("2006-01-02 15:04:05"), r.Converter, r.Status, r.Lines, r.InputPath)
		if r.Error != "" {
			fmt.Fprintf(w, "%22s%s\n", "", r.Error)
		}
	}
	fmt.Fprintf(w, "\n%d conversions\n", len(records))
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	opts := historyOptsFromFlags(cmd)
	switch format {
	case "yaml", "":
		err = store.ExportYAML(cmd.Context(), w, opts)
	case "json":
		err = store.ExportJSON(cmd.Context(), w, opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", outPath)
	}
	return nil
}

// openHistoryStore opens the store regardless of --history, which only
// controls recording.
func openHistoryStore() (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.History)
}

func historyOptsFromFlags(cmd *cobra.Command) history.QueryOptions {
	converter, _ := cmd.Flags().GetString("converter")
	status, _ := cmd.Flags().GetString("status")
	input, _ := cmd.Flags().GetString("input")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.QueryOptions{
		Converter:  converter,
		Status:     types.ConversionStatus(status),
		InputPath:  input,
		MaxResults: limit,
	}
}

func init() {
	// Shared filter flags, inherited by export.
	historyCmd.PersistentFlags().String("converter", "", "filter by converter: bes2brf, bes2unicode, nabcc2unicode, unicode2nabcc")
	historyCmd.PersistentFlags().String("status", "", "filter by status: converted, failed")
	historyCmd.PersistentFlags().String("input", "", "filter by input path")

	historyCmd.Flags().Int("limit", 0, "maximum records (0 = use default)")
	historyCmd.Flags().Bool("json", false, "output records as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "write the export to this file instead of stdout")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
