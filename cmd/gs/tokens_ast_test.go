package main

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/parser"
)

// renderTokens mirrors exactly what `gs --tokens` writes: one Token.String()
// line per token.
func renderTokens(src string) (string, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// renderAST mirrors `gs --ast`: one Stmt.String() line per top-level
// statement.
func renderAST(src string) (string, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return "", err
	}
	program, err := parser.Parse(toks)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, stmt := range program.Statements {
		b.WriteString(stmt.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func TestTokensDumpSnapshot(t *testing.T) {
	out, err := renderTokens(`let x: Int = 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestASTDumpSnapshot(t *testing.T) {
	out, err := renderAST(`
fn add(a: Int, b: Int): Int {
  return a + b;
}
let result = add(1, 2);
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}

func TestASTDumpMapListAndIfElse(t *testing.T) {
	out, err := renderAST(`
let m = {"a": 1, "b": 2};
let xs = [1, 2, 3];
if (xs[0] == 1) { m["a"] = 9; } else { m["b"] = 9; }
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	snaps.MatchSnapshot(t, out)
}
