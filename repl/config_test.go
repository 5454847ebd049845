package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Prompt)
	require.False(t, cfg.NoColor)
}

func TestLoadConfigParsesYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	content := "prompt: \"gs$ \"\nno_color: true\nversion: \"9.9\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gsrepl.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "gs$ ", cfg.Prompt)
	require.True(t, cfg.NoColor)
	require.Equal(t, "9.9", cfg.Version)
}

func TestNewAppliesConfigOverDefaults(t *testing.T) {
	r := New(&Config{Prompt: "custom> ", Version: "1.2.3"})
	require.Equal(t, "custom> ", r.Prompt)
	require.Equal(t, "1.2.3", r.Version)
}

func TestNewFallsBackToDefaultsOnNilConfig(t *testing.T) {
	r := New(nil)
	require.Equal(t, "gs> ", r.Prompt)
}
