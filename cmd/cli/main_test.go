package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mklandgo/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"frobnicate"})
	require.Error(t, err)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok, "expected an ExitError, got %T", err)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_ConfigurationFileEndToEnd(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "sweep.hcl")
	configContent := `
problem {
  codomain = "trap"

  m {
    min = 2
  }
  k {
    min = 2
  }
  o {
    min = 1
  }
  b {
    min = 0
  }
}
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	codomainDir := filepath.Join(root, "codomains")
	problemDir := filepath.Join(root, "problems")

	out := &bytes.Buffer{}
	err := run(out, []string{
		"-seed", "7", "-log-level", "error",
		"configuration-file", "-n", "2",
		configPath, codomainDir, problemDir,
	})
	require.NoError(t, err)

	for _, name := range []string{"trap_2_2_1_0_0.txt", "trap_2_2_1_0_1.txt"} {
		assert.FileExists(t, filepath.Join(problemDir, name))
		assert.FileExists(t, filepath.Join(codomainDir, name))
	}
}

func TestRun_MissingConfigurationFile(t *testing.T) {
	root := t.TempDir()
	err := run(&bytes.Buffer{}, []string{
		"configuration-file",
		filepath.Join(root, "missing.hcl"),
		filepath.Join(root, "codomains"),
		filepath.Join(root, "problems"),
	})
	assert.Error(t, err)
}
