package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput returns the source named by the argument list: an -e
// expression, a file path, or stdin for "-" and no arguments.
func readInput(cmd *cobra.Command, args []string) (name string, src []byte, err error) {
	if expr, _ := cmd.Flags().GetString("expr"); expr != "" {
		if len(args) > 0 {
			return "", nil, usageError{fmt.Errorf("-e cannot be combined with a file argument")}
		}
		return "<expr>", []byte(expr), nil
	}
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	// #nosec G304 -- path is provided by the user
	src, err = os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], bytes.TrimPrefix(src, utf8BOM), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stderrFile returns stderr as *os.File when it is one, for color detection.
func stderrFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		return f
	}
	return nil
}

func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
