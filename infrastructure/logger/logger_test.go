package logger

import (
	"context"
	"testing"

	"github.com/prasetyowira/starsign/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(nil) })
	return logs
}

func TestCtxInfo_Fields(t *testing.T) {
	// Arrange
	logs := observe(t)
	ctx := WithRequestID(context.Background(), "req-1")

	// Act
	CtxError(ctx, "render failed", LoggerInfo{
		ContextFunction: constant.CtxRender,
		Error: &CustomError{
			Code:    constant.ErrCodeRenderOptions,
			Message: "bad",
			Type:    constant.ErrTypeValidation,
		},
		Data: map[string]interface{}{
			constant.DataFormat: "svg",
		},
	})

	// Assert
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "render failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields[constant.LogRequestIDKey])
	assert.Equal(t, constant.CtxRender, fields[constant.LogFunctionKey])
	assert.Equal(t, constant.ErrCodeRenderOptions, fields[constant.LogErrorCodeKey])
	assert.Equal(t, "svg", fields[constant.DataFormat])
}

func TestNewRequestContext(t *testing.T) {
	first := RequestID(NewRequestContext())
	second := RequestID(NewRequestContext())

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Empty(t, RequestID(context.Background()))
}

func TestNilLoggerIsNoop(t *testing.T) {
	Use(nil)

	assert.NotPanics(t, func() {
		Info("nothing", LoggerInfo{})
		CtxDebug(context.Background(), "nothing", LoggerInfo{})
		Close()
	})
}

func TestInitialize_Level(t *testing.T) {
	t.Cleanup(func() { Use(nil) })

	// Act
	Initialize(false, zapcore.WarnLevel)

	// Assert
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
