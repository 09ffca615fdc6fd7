package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sqlex/internal/diag"
	"sqlex/internal/diagfmt"
	"sqlex/internal/source"
)

// printDiagnostics writes bag to stderr in the pretty form.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len()+bag.Dropped() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(stderrFile(cmd)),
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
		ShowFixes: true,
	})
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d more diagnostics not shown (--max-diagnostics)\n", n)
	}
}
