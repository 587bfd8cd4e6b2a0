package logutil_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skyencoder/skyencoder-go/logutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
	}{
		{
			name:     "trace level",
			input:    "trace",
			expected: zerolog.TraceLevel,
		},
		{
			name:     "debug level",
			input:    "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "info level",
			input:    "info",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "warn level",
			input:    "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "warning alias",
			input:    "warning",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "error level",
			input:    "error",
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "fatal level",
			input:    "fatal",
			expected: zerolog.FatalLevel,
		},
		{
			name:     "panic level",
			input:    "panic",
			expected: zerolog.PanicLevel,
		},
		{
			name:     "disabled",
			input:    "off",
			expected: zerolog.Disabled,
		},
		{
			name:     "mixed case and spaces",
			input:    "  DEBUG ",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "unknown level defaults to info",
			input:    "unknown",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "empty string defaults to info",
			input:    "",
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := logutil.ParseZerologLevel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.NewLogger(&buf, "warn", false)
	logger.Info().Msg("hidden")
	logger.Warn().Str("job_id", "job-1").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "job-1", entry["job_id"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.NewLogger(&buf, "info", true)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "INF")
}
