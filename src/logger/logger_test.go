package logger

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	savedLogger := baseLogger
	savedLevel := atomic.LoadInt32(&currentLevel)
	baseLogger = newBase(&buf)
	t.Cleanup(func() {
		baseLogger = savedLogger
		atomic.StoreInt32(&currentLevel, savedLevel)
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLogLevel("info")

	msg := "difference column: 99.5% of rows within 1e-06 s (n=3600 missing=0/0)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "99.5% of rows") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	if !SetLogLevel("WARN") {
		t.Fatalf("expected WARN to be accepted")
	}
	Infof("hidden %d", 1)
	Debugf("hidden too")
	Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "level=warning") {
		t.Fatalf("expected warn line, got: %s", out)
	}
}

func TestSetLogLevel_UnknownKeepsCurrent(t *testing.T) {
	capture(t)
	SetLogLevel("error")
	if SetLogLevel("chatty") {
		t.Fatalf("unknown level must be rejected")
	}
	if GetLogLevel() != LevelError {
		t.Fatalf("level changed on unknown name: %v", GetLogLevel())
	}
}

func TestTimeTrack_DebugOnly(t *testing.T) {
	buf := capture(t)
	SetLogLevel("debug")
	TimeTrack(time.Now(), "render")
	if !strings.Contains(buf.String(), "render took") {
		t.Fatalf("expected timing line, got: %s", buf.String())
	}
}
