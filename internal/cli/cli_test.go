package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signassist/internal/config"
	"signassist/internal/describe"
)

// run executes the command tree with args against an isolated config dir
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SIGNASSIST_CONFIG_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "SignAssist version dev")
	assert.Contains(t, out, "Go version: go")
}

func TestURL(t *testing.T) {
	out, err := run(t, "url", "Thank", "You")
	require.NoError(t, err)
	assert.Equal(t, "https://www.signingsavvy.com/sign/thank-you\n", out)
}

func TestURLUsesConfigTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[video]\nurl_template = \"https://signs.example/{term}.mp4\"\n"), 0o600))

	out, err := run(t, "--config", path, "url", "Love")
	require.NoError(t, err)
	assert.Equal(t, "https://signs.example/love.mp4\n", out)
}

func TestURLRequiresTerm(t *testing.T) {
	_, err := run(t, "url")
	assert.Error(t, err)
}

func TestDescribeText(t *testing.T) {
	out, err := run(t, "--provider", "offline", "describe", "love")
	require.NoError(t, err)
	assert.Contains(t, out, "love\n  Hand shape: Both hands in S shapes")
	assert.Contains(t, out, "Video:      https://www.signingsavvy.com/sign/love")
}

func TestDescribeJSON(t *testing.T) {
	out, err := run(t, "--provider", "offline", "describe", "thank", "you", "-o", "json")
	require.NoError(t, err)

	var got signResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "thank you", got.Term)
	assert.Equal(t, "https://www.signingsavvy.com/sign/thank-you", got.VideoURL)
	assert.NotEmpty(t, got.HandShape)
	assert.NotEmpty(t, got.Movement)
}

func TestDescribeMarkdown(t *testing.T) {
	out, err := run(t, "--provider", "offline", "describe", "yes", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Hand shape")
	assert.Contains(t, out, "Video: https://www.signingsavvy.com/sign/yes")
}

func TestDescribeUnknownTerm(t *testing.T) {
	_, err := run(t, "--provider", "offline", "describe", "banana")
	assert.ErrorIs(t, err, describe.ErrNoDescription)
}

func TestDescribeBadFormat(t *testing.T) {
	_, err := run(t, "--provider", "offline", "describe", "yes", "-o", "yaml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestDescribeMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := run(t, "--provider", "openai", "describe", "yes")
	assert.ErrorIs(t, err, describe.ErrMissingAPIKey)
}

func TestUnknownProvider(t *testing.T) {
	_, err := run(t, "--provider", "bogus", "url", "yes")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNegativeVideoDelay(t *testing.T) {
	_, err := run(t, "--video-delay=-1s", "url", "yes")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDescribeDoesNotWriteConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	_, err := run(t, "--config", path, "--provider", "offline", "describe", "yes")
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDescribeFormatCompletion(t *testing.T) {
	out, err := run(t, "__complete", "describe", "--format", "")
	require.NoError(t, err)
	assert.Contains(t, out, "text\n")
	assert.Contains(t, out, "markdown\n")
	assert.Contains(t, out, "json\n")
	assert.Contains(t, out, ":4\n")
}
