package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chordtabs/internal/config"
	"chordtabs/internal/tabs"
)

// execute runs the CLI with fresh flag state and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tabReq = tabs.Request{}
	tabDB, serveDB, buildSource, buildOutput = "", "", "", "chords.db"
	verbose, configForce = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTabCommand(t *testing.T) {
	out, err := execute(t, "tab", "C", "--shape", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "x32010  (1 candidates)")
	assert.Regexp(t, `(?m)^A\s+3\s+0$`, out)
	assert.Regexp(t, `(?m)^E\s+x\s+-$`, out)
}

func TestTabCommandWithFlags(t *testing.T) {
	out, err := execute(t, "tab", "--root", "E", "--type", "maj", "--shape", "D", "--position", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "xxeghg")
}

func TestTabCommandUnknownChord(t *testing.T) {
	_, err := execute(t, "tab", "Csus4")
	assert.Error(t, err)
}

func TestIdentifyCommand(t *testing.T) {
	out, err := execute(t, "identify", "x32010")
	require.NoError(t, err)
	assert.Equal(t, "C major (C shape)\n", out)

	out, err = execute(t, "identify", "xxx000")
	require.NoError(t, err)
	assert.Contains(t, out, "No chords found")

	_, err = execute(t, "identify", "x3201")
	assert.Error(t, err)
}

func TestBuildDBThenTab(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "chords.db")

	out, err := execute(t, "build-db", "--output", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Inserted 13 chord types")

	// Building again replaces the file
	_, err = execute(t, "build-db", "--output", dbPath)
	require.NoError(t, err)

	out, err = execute(t, "tab", "D", "--shape", "C", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "x54232")
}

func TestBuildDBRejectsInvalidSource(t *testing.T) {
	_, err := execute(t, "build-db", "--source", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordtabs.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)

	_, err = execute(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file is kept")

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0644))
	_, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
	loaded, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, loaded.Server.Port)
}
