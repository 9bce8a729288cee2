// Package testutil provides shared test helpers used across e2e and unit
// test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// FakeBower writes an executable bower stand-in to dir that answers
// `bower info <pkg> --json` from payloads keyed by package name. Unknown
// packages fail with ENOTFOUND. It returns the script path.
func FakeBower(t *testing.T, dir string, payloads map[string]string) string {
	t.Helper()
	fixtures := filepath.Join(dir, "bower-fixtures")
	require.NoError(t, os.MkdirAll(fixtures, 0755))
	for name, payload := range payloads {
		require.NoError(t, os.WriteFile(filepath.Join(fixtures, name+".json"), []byte(payload), 0644))
	}
	script := "#!/bin/sh\n" +
		"if [ -f \"" + fixtures + "/$2.json\" ]; then\n" +
		"  cat \"" + fixtures + "/$2.json\"\n" +
		"  exit 0\n" +
		"fi\n" +
		"echo '{\"code\":\"ENOTFOUND\"}'\n" +
		"exit 1\n"
	path := filepath.Join(dir, "bower")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// WriteFile creates parent directories and writes content to path.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
