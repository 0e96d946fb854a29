package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	logger.Warn().Str("garden_id", "2").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"garden_id":"2"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNew_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("INFO", FormatConsole, &buf)
	require.NoError(t, err)

	logger.Info().Msg("catalog loaded")
	assert.Contains(t, buf.String(), "catalog loaded")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", FormatJSON, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "verge.log")

	logger, closer, err := NewFile("debug", path)
	require.NoError(t, err)
	logger.Debug().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
