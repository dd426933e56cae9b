package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/nanocalc/format"
	"github.com/dhamidi/nanocalc/nano/parser"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lexOnly bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "nanocalc <file>",
		Short:   "NanoCalc front-end: tokenize and parse .nano files",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				fmt.Printf("Arquivo não encontrado: %s\n", filename)
				return err
			}
			if lexOnly {
				return runLex(string(data))
			}
			return runParse(string(data), outputFormat)
		},
	}

	cmd.Flags().BoolVar(&lexOnly, "lex", false, "apenas tokenizar (lexer)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "none", "AST output on success (none, json, nano)")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	return cmd
}

// runLex prints the token table. Tokens already produced before a lexical
// error still appear, followed by the diagnostic.
func runLex(source string) error {
	lexer := parser.NewLexer(parser.NewInputBuffer(source))
	enc := format.NewTokenTableEncoder(os.Stdout)
	if err := enc.Header(); err != nil {
		return err
	}
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			fmt.Println(err)
			return err
		}
		if err := enc.Row(tok); err != nil {
			return err
		}
		if tok.Kind == parser.TokenEOF {
			return nil
		}
	}
}

func runParse(source, outputFormat string) error {
	prog, err := parser.Parse(source)
	if err != nil {
		fmt.Println(err)
		return err
	}

	switch outputFormat {
	case "none", "":
		fmt.Println("OK: parsing concluído (nenhum erro sintático encontrado).")
	case "json":
		if err := format.NewASTJSONEncoder(os.Stdout).Encode(prog); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "nano":
		if err := format.NewSourceEncoder(os.Stdout).Encode(prog); err != nil {
			return fmt.Errorf("encode nano: %w", err)
		}
	default:
		err := fmt.Errorf("unknown format: %s (expected none, json, or nano)", outputFormat)
		fmt.Println(err)
		return err
	}
	return nil
}
