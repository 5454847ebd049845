package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.gs")
	require.NoError(t, os.WriteFile(path, []byte("1 + 1;"), 0o644))

	src, err := readSource([]string{path})
	require.NoError(t, err)
	require.Equal(t, "1 + 1;", src)
}

func TestReadSourceMissingFileErrors(t *testing.T) {
	_, err := readSource([]string{"/nonexistent/path/to/script.gs"})
	require.Error(t, err)
}

func TestRunScriptReportsLexError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.gs")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1 & 2;"), 0o644))

	showTokens, showAST = false, false
	err := runScript(rootCmd, []string{path})
	require.Error(t, err)
}

func TestRunScriptReportsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.gs")
	require.NoError(t, os.WriteFile(path, []byte("let = 1;"), 0o644))

	showTokens, showAST = false, false
	err := runScript(rootCmd, []string{path})
	require.Error(t, err)
}
