// Package observability lets applications watch calendar renders.
//
// The pipeline reports layout and drawing of every request, the runner
// reports artifact cache lookups and the render service reports requests.
// Nothing is recorded unless hooks are registered:
//
//	observability.Register(observability.NewLogHooks(logger))
//
// [Register] installs a value for every hook interface it implements, so one
// type can observe pipeline, cache and HTTP events together. Hooks are
// called synchronously on the rendering goroutine and must return quickly.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks observes the two stages of a render.
type PipelineHooks interface {
	// OnLayoutStart is called before months are planned onto pages.
	OnLayoutStart(ctx context.Context, months int)
	// OnLayoutComplete reports the number of pages planned. Layout errors
	// (empty range, unresolved grid) arrive here, never at render.
	OnLayoutComplete(ctx context.Context, pages int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, format string)
	// OnRenderComplete reports the total size of all files produced.
	OnRenderComplete(ctx context.Context, format string, bytes int, duration time.Duration, err error)
}

// CacheHooks observes artifact cache lookups, keyed by output format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// HTTPHooks observes requests to the render service.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// Noop hooks. Embed them to implement only some events.
type (
	NoopPipelineHooks struct{}
	NoopCacheHooks    struct{}
	NoopHTTPHooks     struct{}
)

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	mu       sync.RWMutex
	pipeline PipelineHooks = NoopPipelineHooks{}
	cache    CacheHooks    = NoopCacheHooks{}
	web      HTTPHooks     = NoopHTTPHooks{}
)

// Register installs h for each hook interface it implements and reports
// whether it implemented any.
func Register(h any) bool {
	mu.Lock()
	defer mu.Unlock()
	ok := false
	if p, is := h.(PipelineHooks); is {
		pipeline, ok = p, true
	}
	if c, is := h.(CacheHooks); is {
		cache, ok = c, true
	}
	if w, is := h.(HTTPHooks); is {
		web, ok = w, true
	}
	return ok
}

// SetPipelineHooks installs pipeline hooks; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		pipeline = h
	}
}

// SetCacheHooks installs cache hooks; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		cache = h
	}
}

// SetHTTPHooks installs HTTP hooks; nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		web = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipeline
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cache
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	mu.RLock()
	defer mu.RUnlock()
	return web
}

// Reset restores the no-op hooks.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	pipeline, cache, web = NoopPipelineHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}
}
