package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"sqlex/internal/trace"
)

// setupTracing builds the tracer from the effective settings and attaches
// it to the command context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command) (func(failed bool), error) {
	root := cmd.Root()

	level, err := trace.ParseLevel(current.traceLevel)
	if err != nil {
		return nil, usageError{fmt.Errorf("invalid trace level: %w", err)}
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(bool) {}, nil
	}

	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, usageError{fmt.Errorf("invalid trace mode: %w", err)}
	}
	heartbeatInterval, err := root.PersistentFlags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: current.traceOutput,
		Heartbeat:  heartbeatInterval,
	}
	switch cfg.OutputPath {
	case "stderr":
		cfg.OutputPath = "-"
	case "stdout":
		cfg.Output = cmd.OutOrStdout()
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval, runtimeStatus)
	}

	return func(failed bool) {
		if heartbeat != nil {
			heartbeat.Stop()
		}
		// ring-режим: буфер выводим только после неудачной команды
		if ring := trace.Ring(tracer); ring != nil && failed {
			_ = ring.Dump(cmd.ErrOrStderr(), trace.FormatText)
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

// runtimeStatus: горутины и куча, чтобы по heartbeat было видно зависание.
func runtimeStatus() map[string]string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return map[string]string{
		"goroutines": strconv.Itoa(runtime.NumGoroutine()),
		"heap_kb":    strconv.FormatUint(ms.HeapAlloc/1024, 10),
	}
}
