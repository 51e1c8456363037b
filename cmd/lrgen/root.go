package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lrgen",
	Short: "Generate parser and lexer artifacts from yacc-style specifications",
	Long: `lrgen provides two features:
- Compiles a yacc-style grammar into a portable token/production description.
- Generates a lexer module from a lexical specification, synchronizing its
  rule ids with the compiled grammar's tokens.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
