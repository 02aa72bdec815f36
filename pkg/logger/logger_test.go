package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/salesdesk/pkg/logger"
)

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "production")

	log.Debug("hidden")
	log.Info("order created", "order_id", 12)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "order created", line["msg"])
	assert.EqualValues(t, 12, line["order_id"])
}

func TestLocalWritesTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, "local").Debug("schema ready", "tables", 5)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="schema ready"`)
	assert.Contains(t, buf.String(), "tables=5")
}
