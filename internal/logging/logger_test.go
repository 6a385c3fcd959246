package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/config"
	"resume-tailor/internal/logging/adapters"
)

func newBufferLogger(t *testing.T, format string) (*MultiLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := NewMultiLogger()
	require.NoError(t, logger.AddAdapter(adapters.NewWriterAdapter("buffer", adapters.StdoutConfig{Format: format}, buf)))
	return logger, buf
}

func TestMultiLogger_JSONFieldsAndLevel(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")

	logger.WithField("request_id", "req-1").Info("Processing resume tailoring request", map[string]interface{}{
		"error": errors.New("boom"),
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "Processing resume tailoring request", line["message"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "boom", line["error"])
	assert.NotEmpty(t, line["time"])
}

func TestMultiLogger_FiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.SetLevel(WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "shown")
}

func TestMultiLogger_DerivedLoggersDoNotLeakFields(t *testing.T) {
	logger, buf := newBufferLogger(t, "text")

	child := logger.WithFields(map[string]interface{}{"b": 2, "a": 1})
	child.Info("child")
	logger.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "[INFO] child a=1 b=2"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "[INFO] parent"), lines[1])
}

func TestMultiLogger_DuplicateAdapter(t *testing.T) {
	logger, _ := newBufferLogger(t, "json")
	err := logger.AddAdapter(adapters.NewWriterAdapter("buffer", adapters.StdoutConfig{}, &bytes.Buffer{}))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, InfoLevel, ParseLogLevel("nonsense"))
}

func TestManager_InitializeFileAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tailor.log")

	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Adapters = append(cfg.Logging.Adapters, config.LogAdapter{
		Name:    "file",
		Type:    "file",
		Enabled: true,
		Options: map[string]interface{}{"file_path": path},
	})

	manager := NewManager()
	require.NoError(t, manager.Initialize(cfg))
	assert.Equal(t, []string{"file"}, manager.logger.AdapterNames())

	manager.GetLogger().Debug("written to file")
	require.NoError(t, manager.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestManager_FallsBackToStdout(t *testing.T) {
	manager := NewManager()
	require.NoError(t, manager.Initialize(config.Default()))
	assert.Equal(t, []string{"stdout"}, manager.logger.AdapterNames())
}

func TestAdapterFactory_Unsupported(t *testing.T) {
	_, err := NewAdapterFactory().CreateAdapter(AdapterConfig{Name: "x", Type: "betterstack"})
	assert.Error(t, err)

	_, err = NewAdapterFactory().CreateAdapter(AdapterConfig{Name: "f", Type: "file"})
	assert.Error(t, err)
}
