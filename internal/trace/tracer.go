package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Tracer receives events. Implementations must be goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// StorageMode determines where events go: written as they happen, kept
// in memory for a dump after a failed run, or both.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1
	ModeRing
	ModeBoth
)

var modeNames = map[StorageMode]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m StorageMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

func ParseMode(s string) (StorageMode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return ModeRing, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

// Config of a tracer built by New.
type Config struct {
	Level      Level
	Mode       StorageMode
	Format     Format
	Output     io.Writer // приоритетнее OutputPath
	OutputPath string    // "-" или "": stderr
	RingSize   int       // по умолчанию 4096
	Heartbeat  time.Duration
}

const defaultRingSize = 4096

// New builds a tracer from cfg; LevelOff always yields Nop. Without an
// explicit Format, *.ndjson and *.jsonl outputs get NDJSON.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.RingSize <= 0 {
		cfg.RingSize = defaultRingSize
	}
	if cfg.Format == FormatAuto {
		cfg.Format = FormatText
		switch filepath.Ext(cfg.OutputPath) {
		case ".ndjson", ".jsonl":
			cfg.Format = FormatNDJSON
		}
	}

	var out MultiTracer
	if cfg.Mode == ModeStream || cfg.Mode == ModeBoth || cfg.Mode == 0 {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, NewStreamTracer(w, cfg.Level, cfg.Format))
	}
	if cfg.Mode == ModeRing || cfg.Mode == ModeBoth {
		out = append(out, NewRingTracer(cfg.RingSize, cfg.Level))
	}
	switch len(out) {
	case 0:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	case 1:
		return out[0], nil
	}
	return out, nil
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return &fileSink{Writer: bufio.NewWriter(f), f: f}, nil
}

// fileSink буферизует запись в файл трассы; Close сбрасывает буфер.
type fileSink struct {
	*bufio.Writer
	f *os.File
}

func (s *fileSink) Close() error {
	return errors.Join(s.Flush(), s.f.Close())
}

// Ring finds the RingTracer inside t, if any.
func Ring(t Tracer) *RingTracer {
	switch tt := t.(type) {
	case *RingTracer:
		return tt
	case MultiTracer:
		for _, inner := range tt {
			if r := Ring(inner); r != nil {
				return r
			}
		}
	}
	return nil
}
