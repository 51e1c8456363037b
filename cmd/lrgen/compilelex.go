package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	verr "github.com/nihei9/lrgen/error"
	"github.com/nihei9/lrgen/grammar"
	"github.com/nihei9/lrgen/lexical"
	mlspec "github.com/nihei9/maleeni/spec"
	"github.com/spf13/cobra"
)

var compileLexFlags = struct {
	output                     *string
	grammarPath                *string
	pkgName                    *string
	maleeniPath                *string
	storageType                *string
	allowMissingTermsInLexer   *bool
	allowMissingTokensInParser *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile-lex",
		Short:   "Generate a lexer module from a lexical specification",
		Example: `  lrgen compile-lex rules.l -g grammar.json -o rules_l.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompileLex,
	}
	compileLexFlags.output = cmd.Flags().StringP("output", "o", "", "output file path")
	compileLexFlags.grammarPath = cmd.Flags().StringP("grammar", "g", "", "compiled grammar whose token ids the rules are synchronized with")
	compileLexFlags.pkgName = cmd.Flags().StringP("package", "p", "", "package name of the generated module (default: derived from the input file name)")
	compileLexFlags.maleeniPath = cmd.Flags().String("maleeni", "", "also write the rules as a maleeni lexical specification to this path")
	compileLexFlags.storageType = cmd.Flags().String("storage-type", "uint32", "Go type of the generated token-id constants")
	compileLexFlags.allowMissingTermsInLexer = cmd.Flags().Bool("allow-missing-terms-in-lexer", false, "tolerate tokens the grammar uses but the lexer does not define")
	compileLexFlags.allowMissingTokensInParser = cmd.Flags().Bool("allow-missing-tokens-in-parser", true, "tolerate tokens the lexer defines but the grammar does not use")
	rootCmd.AddCommand(cmd)
}

func runCompileLex(cmd *cobra.Command, args []string) (retErr error) {
	lexPath := args[0]
	defer func() {
		specErr, ok := retErr.(*verr.SpecError)
		if !ok {
			return
		}
		specErr.FilePath = lexPath
		specErr.SourceName = lexPath
	}()

	if *compileLexFlags.output == "" {
		return fmt.Errorf("the output file path is not specified")
	}

	def, err := readLexSpec(lexPath)
	if err != nil {
		return err
	}

	opts := []lexical.BuilderOption{
		lexical.StorageType(*compileLexFlags.storageType),
		lexical.AllowMissingTermsInLexer(*compileLexFlags.allowMissingTermsInLexer),
		lexical.AllowMissingTokensInParser(*compileLexFlags.allowMissingTokensInParser),
	}
	if *compileLexFlags.pkgName != "" {
		opts = append(opts, lexical.ModName(*compileLexFlags.pkgName))
	} else {
		opts = append(opts, lexical.ModName(lexical.ModNameFromPath(lexPath)))
	}
	if *compileLexFlags.grammarPath != "" {
		cgram, err := readCompiledGrammar(*compileLexFlags.grammarPath)
		if err != nil {
			return fmt.Errorf("Cannot read a compiled grammar: %w", err)
		}
		opts = append(opts, lexical.RuleIDs(cgram.TokenIDs()))
	}

	b := lexical.NewLexerBuilder(opts...)
	_, _, err = b.Process(def, *compileLexFlags.output)
	if err != nil {
		var missErr *lexical.MissingError
		if errors.As(err, &missErr) {
			printMissingTokens(missErr)
		}
		return err
	}

	if *compileLexFlags.maleeniPath != "" {
		err = writeMaleeniSpec(def, *compileLexFlags.maleeniPath)
		if err != nil {
			return fmt.Errorf("Cannot write a maleeni lexical specification: %w", err)
		}
	}

	return nil
}

func readLexSpec(path string) (*lexical.LexerDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the lexical specification %s: %w", path, err)
	}
	defer f.Close()
	return lexical.ParseLexSpec(f)
}

func readCompiledGrammar(path string) (*grammar.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	cgram := &grammar.CompiledGrammar{}
	err = json.Unmarshal(data, cgram)
	if err != nil {
		return nil, err
	}
	return cgram, nil
}

// printMissingTokens lists every offending token name, one per line, under a
// header naming the side of the mismatch.
func printMissingTokens(missErr *lexical.MissingError) {
	if len(missErr.MissingFromLexer) > 0 {
		fmt.Fprintln(os.Stderr, "error: the following tokens are used in the grammar but are not defined in the lexer:")
		for _, name := range sortedNames(missErr.MissingFromLexer) {
			fmt.Fprintf(os.Stderr, "    %v\n", name)
		}
	}
	if len(missErr.MissingFromParser) > 0 {
		fmt.Fprintln(os.Stderr, "error: the following tokens are defined in the lexer but not used in the grammar:")
		for _, name := range sortedNames(missErr.MissingFromParser) {
			fmt.Fprintf(os.Stderr, "    %v\n", name)
		}
	}
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeMaleeniSpec(def *lexical.LexerDef, path string) error {
	mlSpec, skip := def.Maleeni()
	b, err := json.Marshal(struct {
		Spec *mlspec.LexSpec      `json:"spec"`
		Skip []mlspec.LexKindName `json:"skip"`
	}{
		Spec: mlSpec,
		Skip: skip,
	})
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintf(f, "%v\n", string(b))
	return nil
}
