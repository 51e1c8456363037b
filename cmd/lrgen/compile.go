package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	verr "github.com/nihei9/lrgen/error"
	"github.com/nihei9/lrgen/grammar"
	"github.com/nihei9/lrgen/spec"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	name   *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile a yacc-style grammar into a token/production description",
		Example: `  lrgen compile grammar.y -o grammar.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.name = cmd.Flags().StringP("name", "n", "", "grammar name (default: the input file name without its extension)")
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
	var grmPath string
	if len(args) > 0 {
		grmPath = args[0]
	}
	defer func() {
		var specErrs verr.SpecErrors
		switch err := retErr.(type) {
		case *verr.SpecError:
			specErrs = verr.SpecErrors{err}
		case verr.SpecErrors:
			specErrs = err
		default:
			return
		}
		for _, specErr := range specErrs {
			if grmPath != "" {
				specErr.FilePath = grmPath
				specErr.SourceName = grmPath
			} else {
				specErr.SourceName = "stdin"
			}
		}
	}()

	gram, err := readGrammar(grmPath)
	if err != nil {
		return err
	}

	cgram := grammar.Compile(gram, grammarName(grmPath))

	return writeCompiledGrammar(cgram, *compileFlags.output)
}

func readGrammar(path string) (*grammar.Grammar, error) {
	var src io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
		}
		defer f.Close()
		src = f
	} else {
		src = os.Stdin
	}

	ast, err := spec.Parse(src)
	if err != nil {
		return nil, err
	}
	err = ast.Validate()
	if err != nil {
		return nil, err
	}
	return grammar.FromAST(ast), nil
}

func grammarName(path string) string {
	if *compileFlags.name != "" {
		return *compileFlags.name
	}
	if path == "" {
		return "grammar"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeCompiledGrammar(cgram *grammar.CompiledGrammar, path string) error {
	var w io.Writer
	if path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	b, err := json.Marshal(cgram)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(b))
	return nil
}
