package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
)

func newCapturedAdapter() (*HertzSlogAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewHertzSlogAdapter(slog.New(handler)), &buf
}

func TestHertzAdapterLevelGate(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.SetLevel(hlog.LevelWarn)
	adapter.Infof("server listening on %s", ":8080")
	assert.Empty(t, buf.String(), "info is gated below warn")

	adapter.Warnf("slow request: %dms", 1500)
	assert.Contains(t, buf.String(), "slow request: 1500ms")
}

func TestHertzAdapterLevelMapping(t *testing.T) {
	adapter, buf := newCapturedAdapter()

	adapter.Trace("handshake")
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	adapter.Notice("draining connections")
	assert.Contains(t, buf.String(), "level=INFO")

	buf.Reset()
	adapter.Fatal("listener gone")
	assert.Contains(t, buf.String(), "level=ERROR", "fatal logs as error without exiting")
}
