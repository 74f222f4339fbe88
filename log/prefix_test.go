package log_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/termlog/log"
	"go.jacobcolvin.com/termlog/stringtest"
)

// Prefix tests share process-wide state and must not run in parallel.

func TestSetPrefix(t *testing.T) {
	t.Cleanup(log.ResetPrefix)

	h, s := newHandler(log.LevelInfo)
	logger := slog.New(h)

	p, err := log.SetPrefix("build")
	require.NoError(t, err)

	logger.Info("compiling")
	logger.Error("failed")

	p.Clear()
	logger.Info("done")

	assert.Equal(t, stringtest.Lines("I: [build] compiling", "I: done"), s.stdout.String())
	assert.Equal(t, "E: [build] failed\n", s.stderr.String())
}

func TestSetPrefixNested(t *testing.T) {
	t.Cleanup(log.ResetPrefix)

	outer, err := log.SetPrefix("outer")
	require.NoError(t, err)

	inner, err := log.SetPrefix("inner")
	require.ErrorIs(t, err, log.ErrNestedPrefix)
	assert.Nil(t, inner)

	outer.Clear()

	again, err := log.SetPrefix("again")
	require.NoError(t, err)

	// A stale prefix cannot clear its successor.
	outer.Clear()

	h, s := newHandler(log.LevelInfo)
	slog.New(h).Info("msg")
	assert.Equal(t, "I: [again] msg\n", s.stdout.String())

	again.Clear()
}

func TestSetPrefixFor(t *testing.T) {
	t.Cleanup(log.ResetPrefix)

	p, err := log.SetPrefixFor(log.LevelDebug, "worker")
	require.NoError(t, err)

	defer p.Clear()

	terse, terseOut := newHandler(log.LevelInfo)
	slog.New(terse).Info("quiet")
	assert.Equal(t, "I: quiet\n", terseOut.stdout.String())

	verbose, verboseOut := newHandler(log.LevelTrace)
	slog.New(verbose).Info("loud")

	line := strings.TrimSuffix(verboseOut.stdout.String(), "\n")
	m := verboseLine.FindStringSubmatch(line)
	require.NotNil(t, m, line)
	assert.Equal(t, "[worker] loud", m[2])
}
