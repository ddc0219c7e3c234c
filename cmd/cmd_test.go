package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("DC_CONFIG", "")
	t.Setenv("DC_DB", filepath.Join(dir, "dc.db"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	first, err := execute(t, "generate", "--topology", "series", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--topology", "series", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Req  =")
	assert.Contains(t, first, "Type SERIES")
}

func TestGenerateRejectsUnknownTopology(t *testing.T) {
	_, err := execute(t, "generate", "--topology", "bridge", "--seed", "1")
	assert.Error(t, err)
}

func TestLLMListEmpty(t *testing.T) {
	out, err := execute(t, "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")
}

func TestLLMViewInvalidID(t *testing.T) {
	_, err := execute(t, "llm", "view", "abc")
	assert.ErrorContains(t, err, "invalid ID")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dcmaster")
}
