package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamapper/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "order.yaml").Msg("checked")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "order.yaml", entry["file"])
	assert.Equal(t, "checked", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(config.LoggingConfig{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")
}
