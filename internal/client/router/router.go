package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
)

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrTooManyRedirects = errors.New("too many redirects")
)

const maxRedirects = 4

// SessionState is the slice of the session store the guard needs.
type SessionState interface {
	HasSession() bool
}

// Location is where a navigation ended up.
type Location struct {
	Path   string
	Route  Route
	Params map[string]string
	// RedirectedFrom is the originally requested path when the guard
	// redirected, otherwise empty.
	RedirectedFrom string
}

// Router resolves paths against the route table, applies the guard and
// tracks the current location. Safe for concurrent use.
type Router struct {
	routes  []Route
	session SessionState
	log     logging.Logger

	mu      sync.RWMutex
	current Location
}

// New builds a router. The session must already be hydrated: the very first
// Navigate evaluates the guard against it.
func New(routes []Route, session SessionState, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop{}
	}
	return &Router{routes: routes, session: session, log: log.With("component", "router")}
}

// Current returns the path of the current location; "" before the first
// navigation.
func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Path
}

// Location returns the full current location.
func (r *Router) Location() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) resolve(path string) (Route, map[string]string, error) {
	for _, rt := range r.routes {
		if params, ok := rt.match(path); ok {
			return rt, params, nil
		}
	}
	return Route{}, nil, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
}

// Navigate moves to path, following guard redirects. The returned Location is
// the final one; its RedirectedFrom is set when the target was not path.
func (r *Router) Navigate(ctx context.Context, path string) (Location, error) {
	requested := path

	for range maxRedirects {
		rt, params, err := r.resolve(path)
		if err != nil {
			return Location{}, err
		}

		decision := Guard(rt.Access, r.session.HasSession())
		switch decision {
		case Allow:
			loc := Location{Path: path, Route: rt, Params: params}
			if path != requested {
				loc.RedirectedFrom = requested
			}
			r.mu.Lock()
			r.current = loc
			r.mu.Unlock()
			r.log.Debug(ctx, "navigated", "path", path, "requested", requested)
			return loc, nil
		case RedirectLogin:
			path = common.LoginPath
		case RedirectHome:
			path = common.HomePath
		}
		r.log.Debug(ctx, "guard redirect", "from", rt.Pattern, "to", path, "decision", decision.String())
	}

	return Location{}, fmt.Errorf("%w: %s", ErrTooManyRedirects, requested)
}

// Redirect forces navigation to path, dropping the result. Used by the
// HTTP client when a 401 ends the session.
func (r *Router) Redirect(ctx context.Context, path string) {
	if _, err := r.Navigate(ctx, path); err != nil {
		r.log.Warn(ctx, "forced redirect failed", "path", path, "error", err)
	}
}
