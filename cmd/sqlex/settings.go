package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"sqlex/internal/config"
	"sqlex/internal/driver"
)

// SQLEX_TRACE_LEVEL -> trace.level
var envKeyReplacer = strings.NewReplacer(".", "_")

// settings is the effective configuration: flags over SQLEX_* over sqlex.toml.
type settings struct {
	file           config.Config
	color          config.ColorMode
	maxDiagnostics int
	jobs           int
	traceLevel     string
	traceOutput    string
}

var current settings

// loadSettings reads sqlex.toml and layers flags and environment on top.
// Values from the file become viper defaults, so a flag that was not set
// and an absent variable fall through to the file.
func loadSettings(cmd *cobra.Command) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return usageError{err}
	}

	viper.SetDefault("color", cfg.Color)
	viper.SetDefault("max_diagnostics", cfg.MaxDiagnostics)
	viper.SetDefault("jobs", cfg.Jobs)
	viper.SetDefault("trace.level", cfg.Trace.Level)
	viper.SetDefault("trace.output", cfg.Trace.Output)
	viper.SetDefault("tokenize.format", cfg.Tokenize.Format)
	viper.SetDefault("format.keyword_case", cfg.Format.KeywordCase)
	viper.SetDefault("format.normalize_commas", cfg.Format.NormalizeCommas)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.dir", cfg.Cache.Dir)

	color, err := config.ParseColor(viper.GetString("color"))
	if err != nil {
		return usageError{err}
	}
	current = settings{
		file:           cfg,
		color:          color,
		maxDiagnostics: viper.GetInt("max_diagnostics"),
		jobs:           viper.GetInt("jobs"),
		traceLevel:     viper.GetString("trace.level"),
		traceOutput:    viper.GetString("trace.output"),
	}
	return nil
}

// useColor resolves auto against the stream the output goes to.
func useColor(f *os.File) bool {
	switch current.color {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	return f != nil && isTerminal(f)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// driverOptions builds the shared driver options; cache is opened only when
// enabled by flag, environment or file.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: current.maxDiagnostics,
		Jobs:           current.jobs,
	}
	enabled := viper.GetBool("cache.enabled")
	if f := cmd.Flags().Lookup("cache"); f != nil && f.Changed {
		enabled, _ = cmd.Flags().GetBool("cache")
	}
	if !enabled {
		return opts, nil
	}
	cache, err := openCache()
	if err != nil {
		return opts, err
	}
	opts.Cache = cache
	return opts, nil
}

func openCache() (*driver.TokenCache, error) {
	dir := viper.GetString("cache.dir")
	if dir == "" {
		var err error
		if dir, err = driver.DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	return driver.OpenTokenCache(dir)
}
