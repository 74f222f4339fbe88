package log_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/termlog/log"
	"go.jacobcolvin.com/termlog/stringtest"
)

// Helper tests log through slog.Default and must not run in parallel.

func TestHelpersTerse(t *testing.T) {
	s := initTo(t, log.LevelInfo)

	log.Errorf("failed after %d tries", 3)
	log.Warnf("slow: %s", "1s")
	log.Infof("hello %s", "world")
	log.Debugf("hidden %d", 1)
	log.Tracef("hidden %d", 2)
	log.Trace("hidden", "n", 3)

	assert.Equal(t, stringtest.Lines("E: failed after 3 tries", "W: slow: 1s"), s.stderr.String())
	assert.Equal(t, "I: hello world\n", s.stdout.String())
}

func TestHelpersReportCallSite(t *testing.T) {
	s := initTo(t, log.LevelTrace)

	_, line := here()
	log.Infof("hello %s", "world")
	log.Trace("state", "n", 3)

	lines := stringtest.SplitLines(s.stdout.String())
	assert.Len(t, lines, 2)

	for i, want := range []string{
		fmt.Sprintf("[it_test.go:%03d] I: hello world", line+1),
		fmt.Sprintf("[it_test.go:%03d] T: state n=3", line+2),
	} {
		if assert.Greater(t, len(lines), i) {
			assert.Contains(t, lines[i], want)
			assert.Regexp(t, verboseLine, lines[i])
		}
	}
}
