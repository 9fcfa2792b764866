package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCmdFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCommand executes the CLI against the given args and reports the
// error Execute returned; the exit status signal lands in exitCode.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	exitCode = 0
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckExitCodeSignalsChange(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.json")
	file := writeCmdFile(t, dir, "a.txt", "hello")

	// First sighting counts as changed.
	require.NoError(t, runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", file))
	assert.Equal(t, 1, exitCode)

	// Same content on the next run: clean exit.
	require.NoError(t, runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", file))
	assert.Equal(t, 0, exitCode)

	// A content change flips the status back.
	writeCmdFile(t, dir, "a.txt", "hello again")
	require.NoError(t, runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", file))
	assert.Equal(t, 1, exitCode)
}

func TestCheckOneChangedFileAmongManySignalsChange(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.json")
	a := writeCmdFile(t, dir, "a.txt", "aaa")
	b := writeCmdFile(t, dir, "b.txt", "bbb")

	require.NoError(t, runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", a, b))
	require.Equal(t, 1, exitCode)

	writeCmdFile(t, dir, "b.txt", "BBB")
	require.NoError(t, runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", a, b))
	assert.Equal(t, 1, exitCode, "a single changed file must set the exit status")
}

func TestCheckMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.json")

	err := runCommand(t, "--cache-file", cachePath, "--base-dir", dir, "check", filepath.Join(dir, "absent.txt"))
	require.Error(t, err)
	assert.Equal(t, 0, exitCode, "an error exit must not masquerade as a change signal")
}
