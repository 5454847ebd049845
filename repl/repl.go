// Package repl implements the interactive Read-Eval-Print Loop for gs.
// The REPL provides an interactive environment where users can:
// - Enter gs statements line by line
// - See the value of each statement as soon as it runs
// - Navigate command history using arrow keys
// - Receive colored feedback for different kinds of output
//
// It uses chzyer/readline for line editing and fatih/color for the
// banner and result coloring, matching the ambient tooling the rest of
// this module uses for its CLI surface.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/Saliba-codes/GadySH/eval"
	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
   ____ ___
  / ___/ __)
 | |  ( (_
 | |   \__ \
 | |___ __) )
  \____|___/   gs — the gradual scripting language
`

// Config is the optional REPL customization file, ".gsrepl.yaml" in the
// user's home directory: a prompt override and a flag to disable color
// for terminals or pipes that don't render it well.
type Config struct {
	Prompt   string `yaml:"prompt"`
	NoColor  bool   `yaml:"no_color"`
	Version  string `yaml:"version"`
}

// LoadConfig reads ~/.gsrepl.yaml if present, returning zero-value
// defaults (and no error) when the file doesn't exist — the config is
// entirely optional.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	path := filepath.Join(home, ".gsrepl.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, nil
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// Repl is one interactive session's prompt and version banner. Start
// creates the single Evaluator instance every line runs against (so
// `let`-bound names and function declarations persist across lines, the
// way a script's globals would).
type Repl struct {
	Prompt  string
	Version string
}

// New builds a Repl, applying cfg on top of built-in defaults. cfg may be
// the zero value.
func New(cfg *Config) *Repl {
	prompt := "gs> "
	version := "0.1"
	if cfg != nil {
		if cfg.Prompt != "" {
			prompt = cfg.Prompt
		}
		if cfg.Version != "" {
			version = cfg.Version
		}
	}
	if cfg != nil && cfg.NoColor {
		color.NoColor = true
	}
	return &Repl{Prompt: prompt, Version: version}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	yellowColor.Fprintf(w, "gs %s\n", r.Version)
	cyanColor.Fprintln(w, "Type gs statements and press enter. Type '.exit' to quit.")
	blueColor.Fprintln(w, strings.Repeat("-", 40))
}

// Start runs the REPL loop against w (also used as the evaluator's print
// sink) until the user types .exit or sends EOF.
func (r *Repl) Start(w io.Writer, stdlibPath string) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	e := eval.New(w)
	if err := e.LoadStdlib(stdlibPath); err != nil {
		redColor.Fprintf(w, "warning: %s\n", err)
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(w, line, e)
	}
}

// evalLine lexes, parses, and evaluates one line of input against e,
// printing the resulting value in yellow or any error in red. Unlike file
// execution, an error here never terminates the session — the user gets
// another prompt to try again.
func (r *Repl) evalLine(w io.Writer, line string, e *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	toks, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	result, err := e.Run(prog)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.Display())
}
