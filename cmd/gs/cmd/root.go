package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saliba-codes/GadySH/eval"
	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/parser"
)

var (
	showTokens bool
	showAST    bool
	stdlibPath string
)

var rootCmd = &cobra.Command{
	Use:           "gs [file]",
	Short:         "gs — the gradual scripting language interpreter",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScript,
}

// Execute runs the root command; cobra's own usage/error printing is
// silenced because every failure path here renders its own "Error: <msg>"
// line to match the CLI's documented contract exactly.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream and exit")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "print the parsed AST and exit")
	rootCmd.PersistentFlags().StringVar(&stdlibPath, "stdlib", "", "path to stdlib/std.gs (defaults to a path relative to this binary)")
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runScript(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	if showTokens {
		for _, t := range toks {
			fmt.Fprintln(os.Stdout, t.String())
		}
		return nil
	}

	program, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	if showAST {
		for _, stmt := range program.Statements {
			fmt.Fprintln(os.Stdout, stmt.String())
		}
		return nil
	}

	e := eval.New(os.Stdout)
	path := stdlibPath
	if path == "" {
		path = eval.DefaultStdlibPath()
	}
	if err := e.LoadStdlib(path); err != nil {
		return err
	}

	result, err := e.Run(program)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, result.Display())
	return nil
}
