package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	Component(logger, "segmenter").Info("dropped")
	Component(logger, "segmenter").WithField("sentence", 3).Warn("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "segmenter", entry["component"])
	assert.EqualValues(t, 3, entry["sentence"])
}

func TestNewDefaults(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewInvalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
