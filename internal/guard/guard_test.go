package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/infra/storage/localstorage"
	"github.com/m04kA/MediCare-Portal/internal/session"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
)

type fakeSessions struct {
	ready   chan struct{}
	session domain.Session
}

func newFakeSessions(ready bool, s domain.Session) *fakeSessions {
	f := &fakeSessions{ready: make(chan struct{}), session: s}
	if ready {
		close(f.ready)
	}
	return f
}

func (f *fakeSessions) Ready() <-chan struct{}   { return f.ready }
func (f *fakeSessions) Snapshot() domain.Session { return f.session.Clone() }

func sessionWithRole(role domain.Role) domain.Session {
	return domain.Session{
		User:            &domain.User{ID: "u1", Username: "alice", Role: role},
		Token:           "tok",
		IsAuthenticated: true,
	}
}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		session domain.Session
		req     Requirement
		want    Decision
	}{
		{
			name: "empty session",
			req:  RequireUser,
			want: Decision{State: StateDenied, Redirect: domain.LoginPath},
		},
		{
			name:    "token without user",
			session: domain.Session{Token: "tok", IsAuthenticated: true},
			req:     RequireUser,
			want:    Decision{State: StateDenied, Redirect: domain.LoginPath},
		},
		{
			name:    "flag without token",
			session: domain.Session{User: &domain.User{ID: "u1"}, IsAuthenticated: true},
			req:     RequireUser,
			want:    Decision{State: StateDenied, Redirect: domain.LoginPath},
		},
		{
			name:    "user on user route",
			session: sessionWithRole(domain.RoleUser),
			req:     RequireUser,
			want:    Decision{State: StateAuthorized},
		},
		{
			name:    "user on admin route",
			session: sessionWithRole(domain.RoleUser),
			req:     RequireAdmin,
			want:    Decision{State: StateDenied, Redirect: domain.HomePath},
		},
		{
			name:    "admin on admin route",
			session: sessionWithRole(domain.RoleAdmin),
			req:     RequireAdmin,
			want:    Decision{State: StateAuthorized},
		},
		{
			name:    "admin on user route",
			session: sessionWithRole(domain.RoleAdmin),
			req:     RequireUser,
			want:    Decision{State: StateAuthorized},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(newFakeSessions(true, tt.session), nil, logger.NewNop(), Options{})

			assert.Equal(t, tt.want, g.Evaluate(context.Background(), tt.req))
		})
	}
}

func TestGuard_PendingUntilReady(t *testing.T) {
	sessions := newFakeSessions(false, sessionWithRole(domain.RoleAdmin))
	g := New(sessions, nil, logger.NewNop(), Options{GracePeriod: 10 * time.Millisecond})

	d := g.Evaluate(context.Background(), RequireAdmin)
	assert.Equal(t, StatePending, d.State, "never authorized before readiness")

	close(sessions.ready)
	assert.Equal(t, StateAuthorized, g.Evaluate(context.Background(), RequireAdmin).State)
}

func TestGuard_ReadyWithinGracePeriod(t *testing.T) {
	sessions := newFakeSessions(false, sessionWithRole(domain.RoleUser))
	g := New(sessions, nil, logger.NewNop(), Options{GracePeriod: time.Second})

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(sessions.ready)
	}()

	assert.Equal(t, StateAuthorized, g.Evaluate(context.Background(), RequireUser).State)
}

func TestGuard_DeniedRightAfterLogout(t *testing.T) {
	ctx := context.Background()
	store := session.NewStore(session.NewPersister(localstorage.NewMemoryRepository(), ""), nil, logger.NewNop())
	require.NoError(t, store.Rehydrate(ctx))

	// grace period заведомо длиннее теста: решение не должно его ждать
	g := New(store, nil, logger.NewNop(), Options{GracePeriod: time.Hour})

	for _, req := range []Requirement{RequireUser, RequireAdmin} {
		require.NoError(t, store.Login(ctx, domain.User{ID: "u1", Username: "root", Role: domain.RoleAdmin}, "tok"))
		require.Equal(t, StateAuthorized, g.Evaluate(ctx, req).State)

		require.NoError(t, store.Logout(ctx))

		start := time.Now()
		d := g.Evaluate(ctx, req)
		assert.Equal(t, Decision{State: StateDenied, Redirect: domain.LoginPath}, d)
		assert.Less(t, time.Since(start), time.Second)
	}
}

func TestGuard_Middleware(t *testing.T) {
	tests := []struct {
		name         string
		ready        bool
		session      domain.Session
		req          Requirement
		wantStatus   int
		wantLocation string
	}{
		{name: "authorized", ready: true, session: sessionWithRole(domain.RoleUser), req: RequireUser, wantStatus: http.StatusOK},
		{name: "to login", ready: true, req: RequireUser, wantStatus: http.StatusSeeOther, wantLocation: "/login"},
		{name: "to home", ready: true, session: sessionWithRole(domain.RoleUser), req: RequireAdmin, wantStatus: http.StatusSeeOther, wantLocation: "/"},
		{name: "loading", ready: false, session: sessionWithRole(domain.RoleUser), req: RequireUser, wantStatus: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(newFakeSessions(tt.ready, tt.session), nil, logger.NewNop(), Options{GracePeriod: 5 * time.Millisecond})

			r := mux.NewRouter()
			sub := r.PathPrefix("/api/v1").Subrouter()
			sub.Use(g.Middleware(tt.req))
			sub.HandleFunc("/appointments", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantStatus == http.StatusAccepted {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
				assert.JSONEq(t, `{"status":"loading"}`, rec.Body.String())
			}
		})
	}
}
