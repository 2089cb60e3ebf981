package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/toastkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
}

func TestToastID(t *testing.T) {
	t.Parallel()

	attr := logger.ToastID("t-42")
	assert.Equal(t, "toast_id", attr.Key)
	assert.Equal(t, "t-42", attr.Value.String())

	assert.Equal(t, slog.Attr{}, logger.ToastID(""))
}

func TestKind(t *testing.T) {
	t.Parallel()

	attr := logger.Kind("error")
	assert.Equal(t, "kind", attr.Key)
	assert.Equal(t, "error", attr.Value.String())

	assert.Equal(t, slog.Attr{}, logger.Kind(""))
}

func TestComponent(t *testing.T) {
	t.Parallel()

	attr := logger.Component("toasthttp")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "toasthttp", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()

	attr := logger.Count(3)
	assert.Equal(t, "count", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}
