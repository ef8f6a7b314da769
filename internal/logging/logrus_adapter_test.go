package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapter_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogrusAdapter("loud", "text")

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapterFromLogger_NilLogger(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)

	// Chained field builders must return usable loggers.
	logger.WithField("key", "value").WithError(assert.AnError).Debug("no-op")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: "a", Value: 1},
		{Key: "b", Value: "two"},
	})

	assert.Equal(t, logrus.Fields{"a": 1, "b": "two"}, fields)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("scanning", Field{Key: "count", Value: 3})
	mock.Warn("skipped")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "scanning", mock.Entries[0].Message)
	assert.Len(t, mock.EntriesByLevel("WARN"), 1)

	mock.Clear()
	assert.Empty(t, mock.Entries)
}
