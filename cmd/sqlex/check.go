package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sqlex/internal/diag"
	"sqlex/internal/diagfmt"
	"sqlex/internal/driver"
	"sqlex/internal/source"
	"sqlex/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir|file.sql]",
	Short: "Tokenize every .sql file and verify lossless round-trip",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("cache", false, "use the on-disk token cache")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	checkCmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|json|golden)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	diagFormat, _ := cmd.Flags().GetString("diag-format")
	switch diagFormat {
	case "pretty", "json", "golden":
	default:
		return usageError{fmt.Errorf("unknown diag-format: %s", diagFormat)}
	}
	showUI, err := progressEnabled(cmd)
	if err != nil {
		return err
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	run := func(observer driver.ProgressObserver) error {
		opts.Observer = observer
		done := phase("check", "files")
		var err error
		fs, results, err = driver.CheckDir(cmd.Context(), dir, opts)
		done(len(results))
		return err
	}
	if showUI {
		files, err := driver.ListSQLFiles(dir)
		if err != nil {
			return err
		}
		err = ui.RunProgress(cmd.ErrOrStderr(), "check", files, run)
		if err != nil {
			return err
		}
	} else if err := run(nil); err != nil {
		return err
	}

	defer printTimings(cmd)
	report := phase("report", "diagnostics")
	bag := driver.MergeBags(results)
	defer func() { report(bag.Len()) }()
	switch diagFormat {
	case "golden":
		if text := diag.FormatGoldenDiagnostics(bag.Items(), fs, true); text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}); err != nil {
			return err
		}
	default:
		printDiagnostics(cmd, bag, fs)
	}

	sum := driver.Summarize(results, true)
	if diagFormat == "pretty" {
		writeSummary(cmd.ErrOrStderr(), sum)
	}
	if sum.Errors > 0 || sum.RoundTripFailures > 0 {
		return errDiagnostics
	}
	return nil
}

func progressEnabled(cmd *cobra.Command) (bool, error) {
	mode, _ := cmd.Flags().GetString("ui")
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f := stderrFile(cmd)
		return f != nil && isTerminal(f), nil
	}
	return false, usageError{fmt.Errorf("unknown ui mode: %s", mode)}
}

func writeSummary(w io.Writer, s driver.Summary) {
	fmt.Fprintf(w, "checked %d files, %d tokens: %d errors, %d warnings", s.Files, s.Tokens, s.Errors, s.Warnings)
	if s.Cached > 0 {
		fmt.Fprintf(w, ", %d cached", s.Cached)
	}
	if s.RoundTripFailures > 0 {
		fmt.Fprintf(w, ", %d round-trip failures", s.RoundTripFailures)
	}
	fmt.Fprintln(w)
}
