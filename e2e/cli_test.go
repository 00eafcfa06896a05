//go:build e2e && unix

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCommand("url", "Thank you")
	require.NoError(t, err)
	assert.Equal(t, "https://www.signingsavvy.com/sign/thank-you", strings.TrimSpace(out))
}

func TestDescribeCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCommand("--provider", "offline", "describe", "family", "--format", "json")
	require.NoError(t, err, out)

	var got struct {
		Term      string `json:"term"`
		HandShape string `json:"handShape"`
		Movement  string `json:"movement"`
		VideoURL  string `json:"videoUrl"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "family", got.Term)
	assert.Contains(t, got.HandShape, "F shapes")
	assert.Equal(t, "https://www.signingsavvy.com/sign/family", got.VideoURL)
}

func TestDescribeUnknownWordFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)

	out, err := tf.RunCommand("--provider", "offline", "describe", "banana")
	require.Error(t, err)
	assert.Contains(t, out, `couldn't describe "banana"`)
}

func TestFirstRunWritesConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	configPath := filepath.Join(tf.workspace, "config.toml")
	_, err := os.Stat(configPath)
	require.True(t, os.IsNotExist(err), "No config should exist before the first run")

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should render the main screen")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err, "First run should write the default config")
	assert.Contains(t, string(data), "url_template")
	assert.Contains(t, string(data), "[ui]")
}
