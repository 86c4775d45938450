package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmlfix/internal/cli"
)

// testSquashedHTML is a single-line over-encoded fragment that
// exercises all three repair passes.
const testSquashedHTML = `<div class="tree"><a href="/">root</a><div><button>go</button></div></div>`

// writeTestConfig gives each test an explicit config file so loading
// never wanders into a real project config.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "htmlfix.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_FixWritesSidecar(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	output, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never", input)
	require.NoError(t, err)

	assert.Contains(t, output, "Tag balance:")
	assert.Contains(t, output, "wrote "+input+".fixed")

	fixed, err := os.ReadFile(input + ".fixed")
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "\n")

	// Original untouched.
	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, testSquashedHTML, string(original))
}

func TestIntegration_FixDryRun(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	output, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never", "--dry-run", input)
	require.NoError(t, err)

	assert.Contains(t, output, "would write")
	assert.NoFileExists(t, input+".fixed")
}

func TestIntegration_FixStrictMismatch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte("<div><div>orphan</div>"), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	output, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never", "--strict", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrBalanceMismatch))
	assert.Equal(t, cli.ExitBalanceMismatch, cli.ExitCodeForError(err))

	assert.Contains(t, output, "unbalanced")

	// The mismatch changes the exit code, never the write.
	assert.FileExists(t, input+".fixed")
}

func TestIntegration_FixJSONFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	output, err := runCommand(t,
		"fix", "--config", cfgFile, "--format", "json", input)
	require.NoError(t, err)

	var envelope struct {
		Balanced bool `json:"balanced"`
		Result   struct {
			Input   string `json:"input"`
			Written bool   `json:"written"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &envelope))

	assert.True(t, envelope.Balanced)
	assert.Equal(t, input, envelope.Result.Input)
	assert.True(t, envelope.Result.Written)
}

func TestIntegration_FixInPlace(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	_, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never", "--in-place", input)
	require.NoError(t, err)

	rewritten, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.NotEqual(t, testSquashedHTML, string(rewritten))

	backup, err := os.ReadFile(input + ".htmlfix.bak")
	require.NoError(t, err)
	assert.Equal(t, testSquashedHTML, string(backup))
}

func TestIntegration_FixMissingInput(t *testing.T) {
	t.Parallel()

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	_, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never",
		filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestIntegration_FixNoInputNoDefault(t *testing.T) {
	t.Parallel()

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	_, err := runCommand(t, "fix", "--config", cfgFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestIntegration_FixDefaultInputFromConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "default_input: "+input+"\n")

	output, err := runCommand(t,
		"fix", "--config", cfgFile, "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, output, "wrote "+input+".fixed")
}

func TestIntegration_CheckWritesNothing(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(testSquashedHTML), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	output, err := runCommand(t,
		"check", "--config", cfgFile, "--color", "never", input)
	require.NoError(t, err)

	assert.Contains(t, output, "Tag balance:")
	assert.NoFileExists(t, input+".fixed")

	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, testSquashedHTML, string(original))
}

func TestIntegration_CheckStrictMismatch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte("<div>open"), 0o644))

	cfgFile := writeTestConfig(t, "indent_width: 2\n")

	_, err := runCommand(t,
		"check", "--config", cfgFile, "--color", "never", "--strict", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrBalanceMismatch))
	assert.NoFileExists(t, input+".fixed")
}

func TestIntegration_Init(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, ".htmlfix.yml")

	_, err := runCommand(t, "init", "--output", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "indent_width:")

	// A second init without --force refuses to overwrite.
	_, err = runCommand(t, "init", "--output", target)
	require.Error(t, err)

	_, err = runCommand(t, "init", "--output", target, "--force")
	require.NoError(t, err)
}
