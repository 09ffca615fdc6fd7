package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"sqlex/internal/ast"
	"sqlex/internal/diag"
	"sqlex/internal/diagfmt"
	"sqlex/internal/lexer"
	"sqlex/internal/parser"
	"sqlex/internal/source"
	"sqlex/internal/token"
)

const (
	promptMain  = "sqlex> "
	promptCont  = "  ...> "
	historyFile = ".sqlex_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse expressions interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

// replState holds the session switches changed by :commands.
type replState struct {
	ctx   parser.Context
	mode  string // tree | sexpr | tokens
	color bool
}

func runRepl(cmd *cobra.Command, _ []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintln(out, "sqlex expression REPL. :help for commands, :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	st := &replState{mode: "tree", color: useColor(stderrFile(cmd))}
	for {
		src, ok := readExpression(ln, st)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		line := strings.TrimSpace(src)
		if line == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if strings.HasPrefix(line, ":") {
			if quit := st.command(out, line); quit {
				return nil
			}
			continue
		}
		st.eval(out, errOut, src)
	}
}

// readExpression keeps prompting while the input ends in the middle of an
// expression.
func readExpression(ln *liner.State, st *replState) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 && errors.Is(err, liner.ErrPromptAborted) {
				return "", true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, perr := parser.ParseExpression(src, parser.Options{Context: st.ctx})
		var pe *parser.Error
		if errors.As(perr, &pe) && incomplete(pe) {
			continue
		}
		return src, true
	}
}

// incomplete: ошибка на конце ввода, ждём продолжения.
func incomplete(e *parser.Error) bool {
	switch e.Token.Kind {
	case token.EOF, token.ErrUnterminatedString, token.ErrUnterminatedIdentifier:
		return true
	}
	return false
}

func (st *replState) command(w io.Writer, line string) (quit bool) {
	fields := strings.Fields(strings.ToLower(line))
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprintln(w, ":ctx comparison|assignment   meaning of a bare '='")
		fmt.Fprintln(w, ":mode tree|sexpr|tokens      output form")
		fmt.Fprintln(w, ":quit                        leave")
	case ":ctx":
		if len(fields) != 2 {
			fmt.Fprintf(w, "context: %s\n", st.ctx)
			return false
		}
		c, err := parser.ParseContext(fields[1])
		if err != nil {
			fmt.Fprintln(w, err)
			return false
		}
		st.ctx = c
	case ":mode":
		if len(fields) != 2 {
			fmt.Fprintf(w, "mode: %s\n", st.mode)
			return false
		}
		switch fields[1] {
		case "tree", "sexpr", "tokens":
			st.mode = fields[1]
		default:
			fmt.Fprintf(w, "unknown mode %q\n", fields[1])
		}
	default:
		fmt.Fprintln(w, "unknown command. Type :help for a list.")
	}
	return false
}

func (st *replState) eval(out, errOut io.Writer, src string) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<repl>", []byte(src)))

	if st.mode == "tokens" {
		lx := lexer.New(lexer.Options{})
		lx.Reset(file)
		_ = diagfmt.FormatTokensPretty(out, lexer.Collect(lx, true), fs)
		return
	}

	bag := diag.NewBag(current.maxDiagnostics)
	p := parser.New(file, parser.Options{Context: st.ctx, Reporter: diag.BagReporter{Bag: bag}})
	res, err := p.ParseTop()
	if err != nil {
		diagfmt.Pretty(errOut, bag, fs, diagfmt.PrettyOpts{Color: st.color, ShowFixes: true})
		return
	}
	if st.mode == "sexpr" {
		fmt.Fprintln(out, ast.Format(res.Expr))
		return
	}
	_ = diagfmt.FormatExprTree(out, res.Expr, nil)
}
