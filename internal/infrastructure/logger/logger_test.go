package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "airport-lookup"}, &buf)

	log.Info().Str("query", "teb").Msg("Airport search")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "airport-lookup", entry["service"])
	assert.Equal(t, "teb", entry["query"])
	assert.Equal(t, "Airport search", entry["message"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	log.Warn().Msg("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "shout", Format: "json"}, &buf)

	log.Debug().Msg("suppressed")
	assert.Empty(t, buf.Bytes())

	log.Info().Msg("emitted")
	assert.NotEmpty(t, buf.Bytes())
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("console entry")

	// Console output is not JSON.
	assert.Error(t, json.Unmarshal(buf.Bytes(), &map[string]any{}))
	assert.Contains(t, buf.String(), "console entry")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json"}, &buf)

	log.WithComponent("cache").Info().Msg("tagged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cache", entry["component"])
}

func TestNop(t *testing.T) {
	log := Nop()
	// Must not panic; output is discarded.
	log.Error().Msg("dropped")
}
