package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, id := New(Config{Output: &buf, Debug: true})

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "run_id="+id)
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Output: &buf})

	logger.Debug("hidden")
	logger.Info("starting runner")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), `msg="starting runner"`)
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(Config{Output: &buf, Format: "JSON", RunID: "fixed"})

	logger.Warn("structured", "domain", "auth")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fixed", rec["run_id"])
	assert.Equal(t, "auth", rec["domain"])
	assert.Equal(t, "structured", rec["msg"])
}
