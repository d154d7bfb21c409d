package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNilAndNopAreSafe(t *testing.T) {
	var l *Logger
	l.Info("dropped")
	Nop().Error("dropped", zap.Int("id", 1))
	assert.NoError(t, l.Sync())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shop.log")
	l, err := New("info", path)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("cart saved", zap.Int("lines", 2))
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cart saved")
	assert.NotContains(t, string(b), "hidden")
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromZap(zap.New(core))
	l.Info("skipped")
	l.Warn("kept")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}
