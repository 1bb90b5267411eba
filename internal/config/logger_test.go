package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{name: "debug level", level: "debug", debugSeen: true, infoSeen: true},
		{name: "info level", level: "info", debugSeen: false, infoSeen: true},
		{name: "error level", level: "error", debugSeen: false, infoSeen: false},
		{name: "unknown level falls back to info", level: "verbose", debugSeen: false, infoSeen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerTo(&buf, LoggerConfig{Level: tt.level, Format: "json"})

			logger.Debug().Msg("debug message")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug message")))

			logger.Info().Msg("info message")
			assert.Equal(t, tt.infoSeen, bytes.Contains(buf.Bytes(), []byte("info message")))
		})
	}
}

func TestNewLoggerTo_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LoggerConfig{Level: "info", Format: "json"})

	logger.Info().Str("key", "value").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "catalog-api", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerTo_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LoggerConfig{Level: "info", Format: "console"})

	logger.Info().Msg("console message")

	assert.Contains(t, buf.String(), "console message")
	assert.False(t, json.Valid(buf.Bytes()))
}
