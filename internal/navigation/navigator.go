package navigation

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Navigation pending redirect for the browser
type Navigation struct {
	Target  string
	Replace bool
}

// Exemptions пути, которые PendingNavigation пропускает без редиректа.
// Пути заканчивающиеся на "/" сравниваются как префиксы.
type Exemptions struct {
	// Resolve запросы, которые сами ведут на цель навигации (повторный вход):
	// навигация снимается
	Resolve []string
	// Passthrough фоновые запросы клиента: навигация остаётся до следующего запроса
	Passthrough []string
}

// Navigator держит одну отложенную навигацию. Последняя побеждает.
type Navigator struct {
	mu      sync.Mutex
	pending *Navigation
	timers  map[*time.Timer]struct{}
}

func NewNavigator() *Navigator {
	return &Navigator{timers: make(map[*time.Timer]struct{})}
}

// Navigate schedules an immediate redirect to target
func (n *Navigator) Navigate(target string, replace bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = &Navigation{Target: target, Replace: replace}
}

// NavigateAfter schedules a full reload to target once delay has passed
func (n *Navigator) NavigateAfter(delay time.Duration, target string) {
	if delay <= 0 {
		n.Navigate(target, true)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	// колбэк ждёт n.mu, поэтому t уже присвоен, когда он выполняется
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.timers, t)
		n.pending = &Navigation{Target: target, Replace: true}
	})
	n.timers[t] = struct{}{}
}

// Take returns the pending navigation and resets it
func (n *Navigator) Take() (Navigation, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending == nil {
		return Navigation{}, false
	}
	nav := *n.pending
	n.pending = nil
	return nav, true
}

// Stop cancels every scheduled delayed navigation
func (n *Navigator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for t := range n.timers {
		t.Stop()
	}
	n.timers = make(map[*time.Timer]struct{})
}

// scheduled число ещё не сработавших отложенных навигаций
func (n *Navigator) scheduled() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.timers)
}

// PendingNavigation middleware: если есть отложенная навигация, следующий
// запрос (кроме запроса на саму цель) получает 303 на неё
func (n *Navigator) PendingNavigation(next http.Handler) http.Handler {
	return n.PendingNavigationExcept(Exemptions{})(next)
}

// PendingNavigationExcept как PendingNavigation, но пропускает пути из ex
func (n *Navigator) PendingNavigationExcept(ex Exemptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if matchAny(ex.Passthrough, path) {
				next.ServeHTTP(w, r)
				return
			}

			nav, ok := n.Take()
			if ok && nav.Target != path && !matchAny(ex.Resolve, path) {
				http.Redirect(w, r, nav.Target, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if p == path || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}
