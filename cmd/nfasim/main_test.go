package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nfasim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.PersistentFlags().Set("config", "")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nfasim version "+nfasim.Version+"\n", out)
}

func TestRootCommand_ConfigErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nfasim.yaml"), []byte("log_level: loud\n"), 0644))
	_, err := execute(t, "version")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = execute(t, "version", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRunCommand_RequiresFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "run")
	assert.Error(t, err)
}
