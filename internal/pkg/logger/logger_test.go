package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}

func TestInit(t *testing.T) {
	require.NoError(t, Init(zapcore.InfoLevel, zap.String("service", "logger-test")))
	require.NotNil(t, Log)

	first := Log
	require.NoError(t, Init(zapcore.DebugLevel))
	assert.Same(t, first, Log, "Init only configures the logger once")
	assert.NotNil(t, Named("dishes"))
}
