package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sqlex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "sqlex",
	Short:         "Lossless T-SQL lexer and expression parser",
	Long:          `sqlex tokenizes T-SQL without losing a byte and parses expressions into trivia-preserving trees`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadSettings(cmd); err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return setupProfiling(cmd)
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return stopProfiling()
	},
}

// traceCleanup закрывает трассировщик; PostRun-хуки cobra не вызываются
// при ошибке, поэтому зовём из main.
var traceCleanup func(failed bool)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to sqlex.toml (default: search upwards from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.Int("jobs", 0, "parallel workers for directory runs (0 = GOMAXPROCS)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval")
	pf.String("cpuprofile", "", "write a CPU profile to this file")
	pf.String("memprofile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
	pf.Bool("timings", false, "print phase timings to stderr")

	_ = viper.BindPFlag("color", pf.Lookup("color"))
	_ = viper.BindPFlag("max_diagnostics", pf.Lookup("max-diagnostics"))
	_ = viper.BindPFlag("jobs", pf.Lookup("jobs"))
	_ = viper.BindPFlag("trace.output", pf.Lookup("trace"))
	_ = viper.BindPFlag("trace.level", pf.Lookup("trace-level"))
}

func initConfig() {
	viper.SetEnvPrefix("SQLEX")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
}

func main() {
	rootCmd.Version = version.Version
	err := rootCmd.ExecuteContext(context.Background())
	if perr := stopProfiling(); perr != nil && err == nil {
		err = perr
	}
	if traceCleanup != nil {
		traceCleanup(err != nil)
	}
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(exitCode(err))
	}
}
