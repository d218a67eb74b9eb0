// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/braille-convert/internal/convert"
	"github.com/pdiddy/braille-convert/internal/emit"
	"github.com/pdiddy/braille-convert/pkg/types"
)

var bes2brfCmd = &cobra.Command{
	Use:   "bes2brf <input.bes> [output.brf]",
	Short: "Convert a BES file to Braille Ready Format",
	Long: `bes2brf decodes a BES binary braille file and writes each line as BRF
ASCII characters terminated by CRLF. Trailing blank cells are trimmed. When
the output path is omitted the input extension is replaced with .brf.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, func(cfg types.ConvertConfig) convert.Converter {
			return convert.NewBESConverter(cfg.HeaderLength, emit.BRF)
		})
	},
}

var bes2unicodeCmd = &cobra.Command{
	Use:   "bes2unicode <input.bes> [output.txt]",
	Short: "Convert a BES file to Unicode braille text",
	Long: `bes2unicode decodes a BES binary braille file and writes each line as
Unicode braille patterns (U+2800 + cell) in UTF-8 terminated by LF. When the
output path is omitted the input extension is replaced with .txt.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, func(cfg types.ConvertConfig) convert.Converter {
			return convert.NewBESConverter(cfg.HeaderLength, emit.UnicodeText)
		})
	},
}

var nabcc2unicodeCmd = &cobra.Command{
	Use:   "nabcc2unicode <input> [output]",
	Short: "Transliterate NABCC text to Unicode braille",
	Long: `nabcc2unicode replaces NABCC characters (A-Z, 0-9 and braille
punctuation) with Unicode braille patterns line by line. Other characters,
including lowercase letters and whitespace, are copied unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, func(types.ConvertConfig) convert.Converter {
			return convert.NABCCToUnicode
		})
	},
}

var unicode2nabccCmd = &cobra.Command{
	Use:   "unicode2nabcc <input> [output]",
	Short: "Transliterate Unicode braille text to NABCC",
	Long: `unicode2nabcc replaces six-dot Unicode braille patterns with their NABCC
characters line by line. Other characters are copied unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, func(types.ConvertConfig) convert.Converter {
			return convert.UnicodeToNABCC
		})
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <inputs...>",
	Short: "Convert many BES files",
	Long: `batch converts each BES input to a derived output path, printing one
status line per file and a summary. Inputs whose size and modification time
match their last successful conversion are skipped unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runConvert(cmd *cobra.Command, args []string, newConverter func(types.ConvertConfig) convert.Converter) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hist, closeHistory := openHistory(cfg.History, cmd.ErrOrStderr())
	defer closeHistory()

	runner := convert.NewRunner(newConverter(cfg.Convert), cfg.Convert, hist, cmd.OutOrStdout())

	output := ""
	if len(args) > 1 {
		output = args[1]
	}
	_, err = runner.ConvertFile(cmd.Context(), args[0], output)
	return err
}

func runBatch(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	enc, err := emit.Lookup(to)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hist, closeHistory := openHistory(cfg.History, cmd.ErrOrStderr())
	defer closeHistory()

	runner := convert.NewRunner(convert.NewBESConverter(cfg.Convert.HeaderLength, enc), cfg.Convert, hist, cmd.OutOrStdout())
	result := runner.ConvertBatch(cmd.Context(), args)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("to", "brf", "output encoding: brf or unicode")

	rootCmd.AddCommand(bes2brfCmd)
	rootCmd.AddCommand(bes2unicodeCmd)
	rootCmd.AddCommand(nabcc2unicodeCmd)
	rootCmd.AddCommand(unicode2nabccCmd)
	rootCmd.AddCommand(batchCmd)
}
