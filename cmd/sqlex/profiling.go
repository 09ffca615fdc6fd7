package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sqlex/internal/observ"
	"sqlex/internal/prof"
)

var (
	profSession *prof.Session
	timer       *observ.Timer
)

func setupProfiling(cmd *cobra.Command) error {
	var cfg prof.Config
	cfg.CPUPath, _ = cmd.Flags().GetString("cpuprofile")
	cfg.MemPath, _ = cmd.Flags().GetString("memprofile")
	cfg.TracePath, _ = cmd.Flags().GetString("runtime-trace")
	timer = nil
	if on, _ := cmd.Flags().GetBool("timings"); on {
		timer = observ.NewTimer()
	}
	if !cfg.Enabled() {
		return nil
	}
	s, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	profSession = s
	return nil
}

func stopProfiling() error {
	err := profSession.Stop()
	profSession = nil
	return err
}

// phase открывает фазу таймера; без --timings возвращает пустышку.
func phase(name, unit string) func(items int) {
	if timer == nil {
		return func(int) {}
	}
	return timer.Track(name, unit)
}

func printTimings(cmd *cobra.Command) {
	if timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
