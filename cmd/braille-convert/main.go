// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the braille-convert CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/braille-convert/internal/bes"
	"github.com/pdiddy/braille-convert/internal/convert"
	"github.com/pdiddy/braille-convert/internal/history"
	"github.com/pdiddy/braille-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the braille-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "braille-convert",
	Short: "Convert BES braille documents to BRF and Unicode braille text",
	Long: `braille-convert decodes BES binary braille documents into Braille Ready
Format (ASCII, CRLF) or Unicode braille text (UTF-8, LF), and transliterates
NABCC text to and from Unicode braille.

Each conversion is a subcommand: bes2brf, bes2unicode, nabcc2unicode and
unicode2nabcc. Successful and failed runs are recorded in a local history
database; batch runs skip inputs that have not changed since their last
conversion.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./braille-convert.yaml or ~/.config/braille-convert/config.yaml)")
	pf.Int("header-length", bes.DefaultHeaderLength, "size of the BES header region in bytes")
	pf.String("output-dir", "", "directory for derived output files (default: next to the input)")
	pf.Bool("force", false, "convert inputs even when history reports them unchanged")
	pf.Bool("history", true, "record conversions in the history database")
	pf.String("history-db", history.DefaultDBPath, "history database path")

	bindFlag("convert.header_length", "header-length")
	bindFlag("convert.output_dir", "output-dir")
	bindFlag("convert.force", "force")
	bindFlag("history.enabled", "history")
	bindFlag("history.db_path", "history-db")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("braille-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "braille-convert"))
		}
	}

	viper.SetEnvPrefix("BRAILLE_CONVERT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes flags, environment and config file into types.Config.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Convert.HeaderLength <= 0 {
		cfg.Convert.HeaderLength = bes.DefaultHeaderLength
	}
	if cfg.History.DBPath == "" {
		cfg.History.DBPath = history.DefaultDBPath
	}
	return cfg, nil
}

// openHistory opens the history store when enabled. The returned Recorder
// is nil when history is disabled or cannot be opened; a failed open is
// reported on warn and the conversion proceeds without history. close is
// always safe to call.
func openHistory(cfg types.HistoryConfig, warn io.Writer) (rec convert.Recorder, closeFn func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(warn, "warning: history disabled: %v\n", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
