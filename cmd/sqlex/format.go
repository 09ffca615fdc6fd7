package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sqlex/internal/driver"
	"sqlex/internal/format"
	"sqlex/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [paths...]",
	Short: "Normalize keyword case and comma spacing",
	Long: `Fmt rewrites T-SQL with keywords in a single case and, optionally,
one space after every comma. Everything else is kept byte for byte.
Without arguments the source is read from stdin and written to stdout.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().StringP("expr", "e", "", "format this text instead of files")
	fmtCmd.Flags().String("keyword-case", "preserve", "keyword case (upper|lower|preserve)")
	fmtCmd.Flags().Bool("normalize-commas", false, "remove blanks before ',' and keep one space after it")
	fmtCmd.Flags().BoolP("write", "w", false, "write result to the source file instead of stdout")
	fmtCmd.Flags().Bool("check", false, "list files whose formatting differs and exit 1")
	_ = viper.BindPFlag("format.keyword_case", fmtCmd.Flags().Lookup("keyword-case"))
	_ = viper.BindPFlag("format.normalize_commas", fmtCmd.Flags().Lookup("normalize-commas"))
}

type fmtMode struct {
	opts  format.Options
	write bool
	check bool
}

func runFmt(cmd *cobra.Command, args []string) error {
	kc, err := format.ParseKeywordCase(viper.GetString("format.keyword_case"))
	if err != nil {
		return usageError{err}
	}
	var mode fmtMode
	mode.opts = format.Options{KeywordCase: kc, NormalizeCommas: viper.GetBool("format.normalize_commas")}
	mode.write, _ = cmd.Flags().GetBool("write")
	mode.check, _ = cmd.Flags().GetBool("check")
	if mode.write && mode.check {
		return usageError{fmt.Errorf("--write and --check are mutually exclusive")}
	}

	expr, _ := cmd.Flags().GetString("expr")
	if expr != "" || len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if mode.write {
			return usageError{fmt.Errorf("--write needs file arguments")}
		}
		name, src, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return mode.formatOne(cmd, source.NewVirtualFile(name, src))
	}

	var files []string
	for _, arg := range args {
		list, err := driver.ListSQLFiles(arg)
		if err != nil {
			return err
		}
		files = append(files, list...)
	}
	failed := false
	for _, path := range files {
		fs := source.NewFileSet()
		id, err := fs.Load(path)
		if err != nil {
			return err
		}
		if err := mode.formatOne(cmd, fs.Get(id)); err != nil {
			if !errors.Is(err, errDiagnostics) {
				return err
			}
			failed = true
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func (m fmtMode) formatOne(cmd *cobra.Command, sf *source.File) error {
	out, err := format.FormatSource(sf, m.opts)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return errDiagnostics
	}
	switch {
	case m.check:
		if !bytes.Equal(out, sf.Content) {
			fmt.Fprintln(cmd.OutOrStdout(), sf.Path)
			return errDiagnostics
		}
		return nil
	case m.write:
		if bytes.Equal(out, sf.Content) {
			return nil
		}
		if ok, msg := format.CheckRoundTrip(sf, m.opts); !ok {
			return fmt.Errorf("%s: %s", sf.Path, msg)
		}
		info, err := os.Stat(sf.Path)
		if err != nil {
			return err
		}
		if sf.HadBOM() {
			out = append(append([]byte(nil), utf8BOM...), out...)
		}
		return os.WriteFile(sf.Path, out, info.Mode().Perm())
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
