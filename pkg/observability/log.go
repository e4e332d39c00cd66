package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
)

// LogHooks writes render and cache events to a logger at debug level;
// failures are logged as warnings. It implements all hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)

// NewLogHooks creates hooks logging to l, or to log.Default when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l.WithPrefix("events")}
}

// with adds the request id, when ctx carries one.
func (h *LogHooks) with(ctx context.Context) *log.Logger {
	if id := middleware.GetReqID(ctx); id != "" {
		return h.logger.With("id", id)
	}
	return h.logger
}

func (h *LogHooks) OnLayoutStart(ctx context.Context, months int) {
	h.with(ctx).Debug("layout", "months", months)
}

func (h *LogHooks) OnLayoutComplete(ctx context.Context, pages int, d time.Duration, err error) {
	if err != nil {
		h.with(ctx).Warn("layout failed", "error", err, "elapsed", d)
		return
	}
	h.with(ctx).Debug("layout done", "pages", pages, "elapsed", d)
}

func (h *LogHooks) OnRenderStart(ctx context.Context, format string) {
	h.with(ctx).Debug("render", "format", format)
}

func (h *LogHooks) OnRenderComplete(ctx context.Context, format string, bytes int, d time.Duration, err error) {
	if err != nil {
		h.with(ctx).Warn("render failed", "format", format, "error", err, "elapsed", d)
		return
	}
	h.with(ctx).Debug("render done", "format", format, "bytes", bytes, "elapsed", d)
}

func (h *LogHooks) OnCacheHit(ctx context.Context, format string) {
	h.with(ctx).Debug("cache hit", "format", format)
}

func (h *LogHooks) OnCacheMiss(ctx context.Context, format string) {
	h.with(ctx).Debug("cache miss", "format", format)
}

func (h *LogHooks) OnCacheSet(ctx context.Context, format string, size int) {
	h.with(ctx).Debug("cache set", "format", format, "bytes", size)
}

func (h *LogHooks) OnRequest(ctx context.Context, method, path string) {
	h.with(ctx).Debug("request", "method", method, "path", path)
}

// OnResponse only reports server errors; the render service writes its own
// access log.
func (h *LogHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.with(ctx).Warn("server error", "method", method, "path", path, "status", status, "elapsed", d)
	}
}
