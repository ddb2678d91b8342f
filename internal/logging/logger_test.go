package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "", want: LevelInfo},
		{input: "warning", want: LevelWarn},
		{input: " error ", want: LevelError},
		{input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf}).
		WithComponent("foo").
		With("target", "foo")

	logger.Error(context.Background(), errors.New("write failed"), "print failed", "bytes", 0)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "print failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "foo", entry["component"])
	assert.Equal(t, "foo", entry["target"])
	assert.Equal(t, "write failed", entry["error"])
	assert.Equal(t, float64(0), entry["bytes"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden too")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), nil, "visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})
	_ = parent.With("child_only", true)

	parent.Info(context.Background(), "parent")
	assert.NotContains(t, buf.String(), "child_only")
}

func TestWithKeepsFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf}).
		With("zeta", 1, "alpha", 2).
		With("mid", 3, "zeta", 4)

	for i := 0; i < 20; i++ {
		buf.Reset()
		logger.Info(context.Background(), "ordered")
		assert.Contains(t, buf.String(), "zeta=4 alpha=2 mid=3")
	}
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error(context.Background(), errors.New("x"), "dropped")
	})
}
