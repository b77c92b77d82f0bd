package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"ecoscope/internal/dashboard/client"
)

// Notifier surfaces transient messages such as a failed refresh.
type Notifier interface {
	Notify(message string)
}

// WriterNotifier prints each message on its own line.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(message string) {
	_, _ = fmt.Fprintf(n.W, "! %s\n", message)
}

// State is what a view renders from.
type State[T any] struct {
	Data    T
	Total   int
	Loading bool
	Err     string
	Loaded  bool
}

// Loader runs a fetch and applies its result only if no newer Load was
// issued in the meantime. A failed fetch keeps the previous data.
type Loader[T any] struct {
	mu       sync.Mutex
	fetch    func(ctx context.Context) client.Result[T]
	notifier Notifier
	issued   uint64
	stale    int
	state    State[T]
}

func NewLoader[T any](fetch func(ctx context.Context) client.Result[T], notifier Notifier) *Loader[T] {
	return &Loader[T]{fetch: fetch, notifier: notifier}
}

// Load fetches and returns the state after applying the result. Concurrent
// callers are allowed; the last issued wins regardless of arrival order.
func (l *Loader[T]) Load(ctx context.Context) State[T] {
	l.mu.Lock()
	l.issued++
	seq := l.issued
	l.state.Loading = true
	l.mu.Unlock()

	result := l.fetch(ctx)

	l.mu.Lock()
	if seq != l.issued {
		l.stale++
		state := l.state
		l.mu.Unlock()
		return state
	}

	l.state.Loading = false
	if !result.OK {
		l.state.Err = result.Message
		state := l.state
		l.mu.Unlock()
		if l.notifier != nil {
			l.notifier.Notify(result.Message)
		}
		return state
	}

	l.state.Data = result.Data
	l.state.Total = result.Total
	l.state.Err = ""
	l.state.Loaded = true
	state := l.state
	l.mu.Unlock()
	return state
}

func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Stale counts responses discarded because a newer Load was issued.
func (l *Loader[T]) Stale() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stale
}
