package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saliba-codes/GadySH/eval"
	"github.com/Saliba-codes/GadySH/repl"
)

var replCmd = &cobra.Command{
	Use:           "repl",
	Short:         "Start the interactive gs REPL",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := repl.LoadConfig()
		if err != nil {
			return err
		}
		path := stdlibPath
		if path == "" {
			path = eval.DefaultStdlibPath()
		}
		r := repl.New(cfg)
		if err := r.Start(os.Stdout, path); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
