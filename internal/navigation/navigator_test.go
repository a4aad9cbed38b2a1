package navigation

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_TakeResets(t *testing.T) {
	n := NewNavigator()

	_, ok := n.Take()
	assert.False(t, ok)

	n.Navigate("/a", false)
	n.Navigate("/login", true)

	nav, ok := n.Take()
	require.True(t, ok)
	assert.Equal(t, Navigation{Target: "/login", Replace: true}, nav)

	_, ok = n.Take()
	assert.False(t, ok)
}

func TestNavigator_NavigateAfter(t *testing.T) {
	n := NewNavigator()
	defer n.Stop()

	n.NavigateAfter(20*time.Millisecond, "/login")

	_, ok := n.Take()
	assert.False(t, ok, "navigation must not be visible before the delay")

	assert.Eventually(t, func() bool {
		nav, ok := n.Take()
		return ok && nav.Target == "/login"
	}, time.Second, 5*time.Millisecond)
}

func TestNavigator_StopCancelsDelayed(t *testing.T) {
	n := NewNavigator()
	n.NavigateAfter(20*time.Millisecond, "/login")
	n.Stop()

	time.Sleep(50 * time.Millisecond)
	_, ok := n.Take()
	assert.False(t, ok)
}

func TestPendingNavigation(t *testing.T) {
	n := NewNavigator()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := n.PendingNavigation(next)

	t.Run("passes through without pending navigation", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("redirects once", func(t *testing.T) {
		n.Navigate("/login", true)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request to the target itself is not redirected", func(t *testing.T) {
		n.Navigate("/login", true)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNavigator_FiredTimersArePruned(t *testing.T) {
	n := NewNavigator()
	defer n.Stop()

	for i := 0; i < 5; i++ {
		n.NavigateAfter(5*time.Millisecond, "/login")
	}
	assert.Equal(t, 5, n.scheduled())

	assert.Eventually(t, func() bool { return n.scheduled() == 0 }, time.Second, 5*time.Millisecond)
	nav, ok := n.Take()
	require.True(t, ok)
	assert.Equal(t, "/login", nav.Target)
}

func TestPendingNavigationExcept(t *testing.T) {
	var served []string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = append(served, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	newHandler := func() (*Navigator, http.Handler) {
		served = nil
		n := NewNavigator()
		h := n.PendingNavigationExcept(Exemptions{
			Resolve:     []string{"/api/v1/auth/"},
			Passthrough: []string{"/api/v1/session", "/api/v1/notifications"},
		})(next)
		return n, h
	}

	t.Run("re-login after 401 reaches the handler", func(t *testing.T) {
		n, h := newHandler()
		n.Navigate("/login", true)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"POST /api/v1/auth/login"}, served)

		// навигация снята: следующий запрос не уводится на login
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("polling keeps the navigation pending", func(t *testing.T) {
		n, h := newHandler()
		n.Navigate("/login", true)

		for _, path := range []string{"/api/v1/session", "/api/v1/notifications"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("prefix match needs a trailing slash", func(t *testing.T) {
		n, h := newHandler()
		n.Navigate("/login", true)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}
