package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sqlex/internal/diagfmt"
	"sqlex/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.sql|-]",
	Short: "Tokenize T-SQL source",
	Long:  `Tokenize splits T-SQL source into tokens with their leading and trailing trivia`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringP("expr", "e", "", "tokenize this text instead of a file")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("cache", false, "use the on-disk token cache")
	tokenizeCmd.Flags().Bool("verify", false, "check that the tokens reproduce the input byte for byte")
	_ = viper.BindPFlag("tokenize.format", tokenizeCmd.Flags().Lookup("format"))
}

func runTokenize(cmd *cobra.Command, args []string) error {
	name, src, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return fmt.Errorf("failed to get verify flag: %w", err)
	}

	defer printTimings(cmd)
	done := phase("lex", "tokens")
	res := driver.TokenizeSource(cmd.Context(), name, src, opts)
	done(len(res.Tokens))
	printDiagnostics(cmd, res.Bag, res.FileSet)

	done = phase("output", "tokens")
	defer func() { done(len(res.Tokens)) }()

	out := cmd.OutOrStdout()
	switch format := strings.ToLower(viper.GetString("tokenize.format")); format {
	case "pretty", "":
		err = diagfmt.FormatTokensPretty(out, res.Tokens, res.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, res.Tokens, res.FileSet)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, res.Tokens, res.FileSet)
	default:
		return usageError{fmt.Errorf("unknown format: %s", format)}
	}
	if err != nil {
		return err
	}

	if res.Bag.HasErrors() {
		return errDiagnostics
	}
	if verify {
		if err := driver.RoundTrip(string(src)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
