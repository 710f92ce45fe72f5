package service

import (
	"context"
	"sync"
	"time"
)

type Redirect struct {
	Path    string `json:"redirect"`
	AfterMS int64  `json:"redirect_after_ms,omitempty"`
}

// RedirectRecorder keeps the last navigation requested while serving one request, until the
// HTTP layer hands it to the browser.
type RedirectRecorder struct {
	mu      sync.Mutex
	pending *Redirect
}

func (r *RedirectRecorder) Record(path string, after time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = &Redirect{Path: path, AfterMS: after.Milliseconds()}
}

func (r *RedirectRecorder) Take() *Redirect {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.pending
	r.pending = nil
	return next
}

type redirectKey struct{}

// WithRedirects attaches a fresh recorder to a request context.
func WithRedirects(ctx context.Context) (context.Context, *RedirectRecorder) {
	recorder := &RedirectRecorder{}
	return context.WithValue(ctx, redirectKey{}, recorder), recorder
}

func RedirectsFrom(ctx context.Context) *RedirectRecorder {
	recorder, _ := ctx.Value(redirectKey{}).(*RedirectRecorder)
	return recorder
}

// RequestNavigator sends navigation to the recorder of the request that caused it. Work
// running outside a request, such as a background recompute, has nowhere to navigate.
type RequestNavigator struct{}

func (RequestNavigator) Navigate(ctx context.Context, path string, after time.Duration) {
	if recorder := RedirectsFrom(ctx); recorder != nil {
		recorder.Record(path, after)
	}
}

var _ Navigator = RequestNavigator{}
