package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeplan/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.Named("prim").Debug("edge selected", zap.String("to", "Casa 2"), zap.Int64("weight", 4))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "prim", entry["name"])
	assert.Equal(t, "edge selected", entry["msg"])
	assert.Equal(t, "Casa 2", entry["to"])
	assert.Equal(t, float64(4), entry["weight"])
}

func TestNew_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Format: "logfmt", Writer: &buf})
	require.NoError(t, err)

	l.Info("minimum spanning tree computed", zap.Int64("total_cost", 57))
	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="minimum spanning tree computed"`)
	assert.Contains(t, out, "total_cost=57")
}

func TestNew_ConsoleDefaults(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Writer: &buf})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.ErrorContains(t, err, "unknown format")
}
