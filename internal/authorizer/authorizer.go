package authorizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/session"
)

// RequestIDHeader correlation header added to every outbound request
const RequestIDHeader = "X-Request-ID"

// maxErrorBody сколько байт тела ошибки читаем, чтобы достать message
const maxErrorBody = 64 << 10

// Options настройки авторизатора; нулевые значения заменяются дефолтами
type Options struct {
	RedirectDelay time.Duration
	LoginPath     string
}

// Authorizer attaches the bearer credential to outbound requests and reacts
// to error responses. It never retries.
type Authorizer struct {
	next     http.RoundTripper
	sessions SessionLoader
	clearer  SessionClearer
	nav      Navigator
	notifier Notifier
	metrics  Metrics
	logger   Logger
	opts     Options
}

// New создает авторизатор. next == nil - http.DefaultTransport. metrics может быть nil.
func New(
	next http.RoundTripper,
	sessions SessionLoader,
	clearer SessionClearer,
	nav Navigator,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
	opts Options,
) *Authorizer {
	if next == nil {
		next = http.DefaultTransport
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = domain.DefaultRedirectDelay
	}
	if opts.LoginPath == "" {
		opts.LoginPath = domain.LoginPath
	}
	return &Authorizer{
		next:     next,
		sessions: sessions,
		clearer:  clearer,
		nav:      nav,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		opts:     opts,
	}
}

// RoundTrip implements http.RoundTripper
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper не должен менять исходный запрос
	out := req.Clone(req.Context())

	if out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, uuid.NewString())
	}

	if token := a.loadToken(out); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := a.next.RoundTrip(out)
	if err != nil {
		a.observe(out.Method, 0, start)
		a.logger.Error("Authorizer: %s %s failed: %v", out.Method, out.URL.Path, err)
		a.notifier.Error(domain.GenericErrorMessage)
		return nil, err
	}
	a.observe(out.Method, resp.StatusCode, start)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		a.logger.Warn("Authorizer: %s %s rejected with 401, clearing session", out.Method, out.URL.Path)
		if err := a.clearer.Clear(out.Context()); err != nil {
			a.logger.Error("Authorizer: failed to clear session: %v", err)
		}
		a.nav.NavigateAfter(a.opts.RedirectDelay, a.opts.LoginPath)
	case resp.StatusCode >= http.StatusBadRequest:
		msg := a.errorMessage(resp)
		a.logger.Warn("Authorizer: %s %s returned %d: %s", out.Method, out.URL.Path, resp.StatusCode, msg)
		a.notifier.Error(msg)
	}

	return resp, nil
}

// loadToken читает сохранённую сессию. Битый blob - запрос уходит без токена.
func (a *Authorizer) loadToken(req *http.Request) string {
	s, err := a.sessions.Load(req.Context())
	switch {
	case err == nil:
		return s.Token
	case errors.Is(err, session.ErrNoPersistedState):
		return ""
	case errors.Is(err, session.ErrCorruptState):
		a.logger.Warn("Authorizer: persisted session is unreadable, sending %s %s without credential: %v",
			req.Method, req.URL.Path, err)
		return ""
	default:
		a.logger.Error("Authorizer: failed to read persisted session: %v", err)
		return ""
	}
}

// errorMessage достаёт поле message из тела ответа и восстанавливает тело
func (a *Authorizer) errorMessage(resp *http.Response) string {
	if resp.Body == nil {
		return domain.GenericErrorMessage
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	rest := resp.Body
	resp.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(data), rest), rest}
	if err != nil {
		return domain.GenericErrorMessage
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || strings.TrimSpace(body.Message) == "" {
		return domain.GenericErrorMessage
	}
	return body.Message
}

func (a *Authorizer) observe(method string, status int, start time.Time) {
	if a.metrics != nil {
		a.metrics.ObserveAPIRequest(method, status, time.Since(start))
	}
}
