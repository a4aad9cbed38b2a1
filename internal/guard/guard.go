package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// State outcome of a guard evaluation
type State string

const (
	StatePending    State = "pending"
	StateAuthorized State = "authorized"
	StateDenied     State = "denied"
)

// Requirement what a guarded view needs. Zero value - any authenticated user.
type Requirement struct {
	Role domain.Role
}

// RequireUser any logged-in user
var RequireUser = Requirement{}

// RequireAdmin only ADMIN
var RequireAdmin = Requirement{Role: domain.RoleAdmin}

// Decision result of Evaluate; Redirect is set only for StateDenied
type Decision struct {
	State    State
	Redirect string
}

// Options пути редиректа и время ожидания готовности
type Options struct {
	GracePeriod time.Duration
	LoginPath   string
	HomePath    string
}

// Guard decides whether a view may be shown for the current session
type Guard struct {
	sessions SessionSource
	metrics  Metrics
	logger   Logger
	opts     Options
}

func New(sessions SessionSource, metrics Metrics, logger Logger, opts Options) *Guard {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = domain.DefaultGracePeriod
	}
	if opts.LoginPath == "" {
		opts.LoginPath = domain.LoginPath
	}
	if opts.HomePath == "" {
		opts.HomePath = domain.HomePath
	}
	return &Guard{sessions: sessions, metrics: metrics, logger: logger, opts: opts}
}

// Evaluate waits for the session to become ready, at most the grace period.
// Until then the decision is Pending, never Authorized.
func (g *Guard) Evaluate(ctx context.Context, req Requirement) Decision {
	d := g.evaluate(ctx, req)
	if g.metrics != nil {
		g.metrics.IncGuardDecision(string(d.State))
	}
	return d
}

func (g *Guard) evaluate(ctx context.Context, req Requirement) Decision {
	if !g.waitReady(ctx) {
		return Decision{State: StatePending}
	}

	s := g.sessions.Snapshot()
	if !s.IsValid() {
		return Decision{State: StateDenied, Redirect: g.opts.LoginPath}
	}
	if req.Role != "" && !s.HasRole(req.Role) {
		return Decision{State: StateDenied, Redirect: g.opts.HomePath}
	}
	return Decision{State: StateAuthorized}
}

func (g *Guard) waitReady(ctx context.Context) bool {
	ready := g.sessions.Ready()

	select {
	case <-ready:
		return true
	default:
	}

	timer := time.NewTimer(g.opts.GracePeriod)
	defer timer.Stop()

	select {
	case <-ready:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Middleware gorilla/mux middleware enforcing req on every route of a subrouter
func (g *Guard) Middleware(req Requirement) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := g.Evaluate(r.Context(), req)

			switch d.State {
			case StateAuthorized:
				next.ServeHTTP(w, r)
			case StateDenied:
				g.logger.Info("Guard: %s %s denied, redirecting to %s", r.Method, r.URL.Path, d.Redirect)
				http.Redirect(w, r, d.Redirect, http.StatusSeeOther)
			default:
				g.logger.Warn("Guard: %s %s pending, session not ready within %s", r.Method, r.URL.Path, g.opts.GracePeriod)
				respondLoading(w)
			}
		})
	}
}

func respondLoading(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "loading"})
}
