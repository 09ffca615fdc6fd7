package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"sqlex/internal/format"
	"sqlex/internal/trace"
)

// Config mirrors sqlex.toml.
type Config struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
	Color          string `toml:"color"` // auto | on | off

	Tokenize TokenizeSection `toml:"tokenize"`
	Format   FormatSection   `toml:"format"`
	Cache    CacheSection    `toml:"cache"`
	Trace    TraceSection    `toml:"trace"`

	// Path is the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

type TokenizeSection struct {
	Format string `toml:"format"` // pretty | json | msgpack
}

type FormatSection struct {
	KeywordCase     string `toml:"keyword_case"`
	NormalizeCommas bool   `toml:"normalize_commas"`
}

type CacheSection struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type TraceSection struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxDiagnostics: 100,
		Color:          "auto",
		Tokenize:       TokenizeSection{Format: "pretty"},
		Format:         FormatSection{KeywordCase: "preserve"},
		Trace:          TraceSection{Level: "off", Output: "stderr"},
	}
}

// Load decodes path over the defaults. Relative cache and trace paths are
// resolved against the directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	base := filepath.Dir(path)
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(base, cfg.Cache.Dir)
	}
	if out := cfg.Trace.Output; out != "" && out != "stderr" && out != "stdout" && !filepath.IsAbs(out) {
		cfg.Trace.Output = filepath.Join(base, out)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds sqlex.toml above startDir and loads it. Without a file
// the defaults are returned.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	switch strings.ToLower(c.Tokenize.Format) {
	case "", "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("tokenize.format: unknown format %q", c.Tokenize.Format)
	}
	if _, err := format.ParseKeywordCase(c.Format.KeywordCase); err != nil {
		return fmt.Errorf("format.keyword_case: %w", err)
	}
	if c.Trace.Level != "" {
		if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
			return fmt.Errorf("trace.level: %w", err)
		}
	}
	return nil
}

// ColorMode is the resolved color setting.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

func ParseColor(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always", "true":
		return ColorOn, nil
	case "off", "never", "false":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("color: unknown mode %q (want auto, on or off)", s)
}
