// Package goroutine runs background tasks with a bounded concurrency budget
// and panic isolation, so fire-and-forget work cannot take the process down.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/rakasatria/eventum/internal/pkg/stacktrace"
)

// DefaultMaxPerCPU is multiplied by GOMAXPROCS sources when the configured
// limit is non-positive.
const DefaultMaxPerCPU = 100

// Manager schedules functions on goroutines up to a fixed concurrency limit.
// Errors returned by tasks are collected and surfaced from Wait.
type Manager struct {
	mu   sync.Mutex
	errs []error

	wg   sync.WaitGroup
	sema chan struct{}

	stateMu sync.RWMutex
	closed  bool
}

// NewManager creates a Manager allowing at most limit concurrent tasks.
func NewManager(limit int) *Manager {
	if limit < 1 {
		limit = runtime.NumCPU() * DefaultMaxPerCPU
	}

	return &Manager{sema: make(chan struct{}, limit)}
}

// Go schedules fn when capacity is available. When the manager is closed or
// saturated the task is dropped with a warning instead of blocking the caller.
func (g *Manager) Go(pCtx context.Context, fn func(ctx context.Context) error) {
	if g == nil {
		return
	}

	g.stateMu.RLock()
	closed := g.closed
	g.stateMu.RUnlock()
	if closed {
		slog.WarnContext(pCtx, "goroutine manager is closed, dropping task")
		return
	}

	select {
	case g.sema <- struct{}{}:
	default:
		slog.WarnContext(pCtx, "goroutine limit reached, dropping task")
		return
	}

	g.wg.Add(1)
	go func() {
		defer func() {
			<-g.sema
			g.wg.Done()

			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(pCtx, "panic in background task", "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(pCtx, "panic in background task", "because", rvr, "stack", string(stack))
				}
			}
		}()

		select {
		case <-pCtx.Done():
			slog.WarnContext(pCtx, "background task canceled", "because", pCtx.Err())
		default:
			if err := fn(pCtx); err != nil {
				g.mu.Lock()
				g.errs = append(g.errs, err)
				g.mu.Unlock()
			}
		}
	}()
}

// Wait closes the manager, blocks until scheduled tasks finish, and returns
// the joined task errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.stateMu.Lock()
	g.closed = true
	g.stateMu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
