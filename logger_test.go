package genarena_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/version"
)

func newBufferLogger(level slog.Level) (*genarena.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return genarena.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestLogger_Grow(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)
	a := genarena.NewDefault[int](genarena.WithLogger(logger.WithName("nodes")))

	_, err := a.Insert(1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"slot storage grown"`)
	assert.Contains(t, out, `"arena":"nodes"`)
	assert.Contains(t, out, `"from":0`)
}

func TestLogger_KeyOverflow(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelError)
	a := genarena.New[key.Small[version.Nil], version.Nil, struct{}](genarena.WithLogger(logger))

	for range 1 << 16 {
		_, err := a.Insert(struct{}{})
		require.NoError(t, err)
	}
	_, err := a.Insert(struct{}{})
	require.ErrorIs(t, err, genarena.ErrKeyOverflow)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "only the overflow is logged at error level")
	assert.Contains(t, out, `"msg":"key index overflow"`)
	assert.Contains(t, out, `"index":65536`)
}

func TestLogger_Levels(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)
	logger.LogGrow(4, 8)
	assert.Empty(t, buf.String(), "growth is debug only")

	logger.LogRetired(3, 255)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestNoopLogger(t *testing.T) {
	l := genarena.NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, genarena.NewLogger(nil))
	assert.NotNil(t, genarena.NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, genarena.NewTextLogger(slog.LevelInfo))
}
