package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/config"
)

func TestOptionalDate(t *testing.T) {
	t.Parallel()

	d, err := optionalDate("", " 2024-03-05 ")
	require.NoError(t, err)
	require.Equal(t, calendar.MustDate(2024, time.March, 5), d)

	d, err = optionalDate("2024-01-02", "2024-03-05")
	require.NoError(t, err)
	require.Equal(t, calendar.MustDate(2024, time.January, 2), d)

	d, err = optionalDate("", "")
	require.NoError(t, err)
	require.True(t, d.IsZero())

	_, err = optionalDate("2024-02-30")
	require.ErrorIs(t, err, calendar.ErrInvalidDateInput)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "picker.log")
	logger, closeLog, err := newLogger(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=hello k=v")

	_, _, err = newLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)

	logger, closeLog, err = newLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	logger.Info("discarded")
	closeLog()
}
