package router

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ecoscope/internal/dashboard/view"
	"ecoscope/pkg/log"
)

const Root = "/"

// Factory builds a fresh view for each navigation.
type Factory func() view.View

// Match is a resolved navigation. Path is the route that served it.
type Match struct {
	Path       string
	View       view.View
	Redirected bool
}

// Router maps literal paths to views and sends everything else to Root.
type Router struct {
	mu      sync.Mutex
	routes  map[string]Factory
	current view.View
}

func New() *Router {
	return &Router{routes: make(map[string]Factory)}
}

func (r *Router) Register(path string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[normalize(path)] = factory
}

// Paths returns the registered routes, sorted.
func (r *Router) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Resolve builds the view for path. An unknown path resolves to Root; if
// Root itself is not registered the match has no view.
func (r *Router) Resolve(path string) Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalize(path)
	if factory, ok := r.routes[key]; ok {
		return Match{Path: key, View: factory()}
	}

	log.Debug("route not found, redirecting", zap.String("path", path))
	match := Match{Path: Root, Redirected: true}
	if factory, ok := r.routes[Root]; ok {
		match.View = factory()
	}
	return match
}

// Navigate unmounts the current view, then resolves and mounts the next.
// A mount error is returned with the match so the caller can still render
// the view's own message.
func (r *Router) Navigate(ctx context.Context, path string) (Match, error) {
	match := r.Resolve(path)

	r.mu.Lock()
	previous := r.current
	r.current = match.View
	r.mu.Unlock()

	if previous != nil {
		previous.Unmount()
	}
	if match.View == nil {
		return match, nil
	}
	return match, match.View.Mount(ctx)
}

// Close unmounts the current view, if any.
func (r *Router) Close() {
	r.mu.Lock()
	current := r.current
	r.current = nil
	r.mu.Unlock()

	if current != nil {
		current.Unmount()
	}
}

// normalize drops the query string, the fragment and trailing slashes.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(strings.TrimSpace(path), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
