package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sqlex/internal/ast"
	"sqlex/internal/diagfmt"
	"sqlex/internal/driver"
	"sqlex/internal/fix"
	"sqlex/internal/parser"
	"sqlex/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.sql|-]",
	Short: "Parse one T-SQL expression",
	Long: `Parse reads a single expression and prints its tree.
With --select the input is the head of a SELECT statement up to FROM.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("expr", "e", "", "parse this text instead of a file")
	parseCmd.Flags().String("context", "comparison", "meaning of a bare '=' (comparison|assignment)")
	parseCmd.Flags().String("format", "tree", "output format (tree|sexpr|render)")
	parseCmd.Flags().Bool("select", false, "parse a SELECT header instead of an expression")
	parseCmd.Flags().Bool("positions", false, "show line:col ranges in tree output")
	parseCmd.Flags().Bool("fix", false, "apply suggested fixes until the expression parses, print the result")
}

type parseOutput struct {
	format    string
	positions bool
}

func runParse(cmd *cobra.Command, args []string) error {
	name, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	ctxStr, _ := cmd.Flags().GetString("context")
	pctx, err := parser.ParseContext(ctxStr)
	if err != nil {
		return usageError{err}
	}
	var out parseOutput
	out.format, _ = cmd.Flags().GetString("format")
	out.positions, _ = cmd.Flags().GetBool("positions")
	switch out.format {
	case "tree", "sexpr", "render":
	default:
		return usageError{fmt.Errorf("unknown format: %s", out.format)}
	}
	selectMode, _ := cmd.Flags().GetBool("select")
	if doFix, _ := cmd.Flags().GetBool("fix"); doFix {
		if selectMode {
			return usageError{fmt.Errorf("--fix cannot be combined with --select")}
		}
		return runRepair(cmd, string(src), pctx)
	}

	opts := driver.Options{MaxDiagnostics: current.maxDiagnostics, Context: pctx}
	if selectMode {
		res := driver.ParseSelectSource(cmd.Context(), name, string(src), opts)
		printDiagnostics(cmd, res.Bag, res.FileSet)
		if res.Err != nil {
			return errDiagnostics
		}
		return out.writeSelect(cmd.OutOrStdout(), res.Header, res.FileSet)
	}

	res := driver.ParseExprSource(cmd.Context(), name, string(src), opts)
	printDiagnostics(cmd, res.Bag, res.FileSet)
	if res.Err != nil {
		return errDiagnostics
	}
	return out.writeExpr(cmd.OutOrStdout(), res.Expr, res.FileSet)
}

// runRepair печатает исправленный текст в stdout, применённые правки в stderr.
func runRepair(cmd *cobra.Command, src string, pctx parser.Context) error {
	fixed, applied, err := fix.Repair(src, parser.Options{Context: pctx}, fix.DefaultMaxRounds)
	for _, a := range applied {
		fmt.Fprintf(cmd.ErrOrStderr(), "applied: %s (%s)\n", a.Title, a.Code.ID())
	}
	if err != nil {
		res := driver.ParseExprSource(cmd.Context(), "<fixed>", fixed, driver.Options{MaxDiagnostics: current.maxDiagnostics, Context: pctx})
		printDiagnostics(cmd, res.Bag, res.FileSet)
		return errDiagnostics
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), fixed)
	return err
}

func (o parseOutput) writeExpr(w io.Writer, e ast.Expr, fs *source.FileSet) error {
	switch o.format {
	case "sexpr":
		_, err := fmt.Fprintln(w, ast.Format(e))
		return err
	case "render":
		_, err := fmt.Fprintln(w, ast.Render(e))
		return err
	}
	if !o.positions {
		fs = nil
	}
	return diagfmt.FormatExprTree(w, e, fs)
}

func (o parseOutput) writeSelect(w io.Writer, h *parser.SelectHeader, fs *source.FileSet) error {
	if o.format == "render" {
		_, err := fmt.Fprintln(w, h.Render())
		return err
	}
	head := []string{"SELECT"}
	if h.Quantifier != nil {
		head = append(head, strings.ToUpper(h.Quantifier.Text))
	}
	if _, err := fmt.Fprintln(w, strings.Join(head, " ")); err != nil {
		return err
	}
	if t := h.Top; t != nil {
		line := "TOP " + ast.Format(t.Count)
		if t.Percent != nil {
			line += " PERCENT"
		}
		if t.Ties != nil {
			line += " WITH TIES"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for i, col := range h.Columns {
		label := fmt.Sprintf("column %d", i+1)
		if alias := col.AliasName(); alias != "" {
			label += " AS " + alias
		}
		if o.format == "sexpr" {
			if _, err := fmt.Fprintf(w, "%s: %s\n", label, ast.Format(col.Expr)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, label+":"); err != nil {
			return err
		}
		tf := fs
		if !o.positions {
			tf = nil
		}
		if err := diagfmt.FormatExprTree(w, col.Expr, tf); err != nil {
			return err
		}
	}
	return nil
}
