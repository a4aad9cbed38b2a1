package medicareapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// Client клиент внешнего MediCare REST API.
// Токен и реакцию на ошибки добавляет transport (authorizer).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента. transport == nil - http.DefaultTransport.
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// Login POST /auth/login
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrInvalidResponse)
	}
	return &out, nil
}

// Register POST /auth/register
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile PATCH /users/profile
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPatch, "/users/profile", nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDoctors GET /doctors с фильтрами search, specialization, minRating, maxFee
func (c *Client) ListDoctors(ctx context.Context, f domain.DoctorFilter) ([]domain.Doctor, error) {
	q := url.Values{}
	setString(q, "search", f.Search)
	setString(q, "specialization", f.Specialization)
	setFloat(q, "minRating", f.MinRating)
	setFloat(q, "maxFee", f.MaxFee)

	var out []domain.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDoctor GET /doctors/{id}
func (c *Client) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	var out domain.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSpecializations GET /doctors/specializations
func (c *Client) ListSpecializations(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/doctors/specializations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTests GET /tests с фильтрами search, category, minPrice, maxPrice
func (c *Client) ListTests(ctx context.Context, f domain.TestFilter) ([]domain.Test, error) {
	q := url.Values{}
	setString(q, "search", f.Search)
	setString(q, "category", f.Category)
	setFloat(q, "minPrice", f.MinPrice)
	setFloat(q, "maxPrice", f.MaxPrice)

	var out []domain.Test
	if err := c.do(ctx, http.MethodGet, "/tests", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTest GET /tests/{id}
func (c *Client) GetTest(ctx context.Context, id string) (*domain.Test, error) {
	var out domain.Test
	if err := c.do(ctx, http.MethodGet, "/tests/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTestCategories GET /tests/categories
func (c *Client) ListTestCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/tests/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment POST /appointments
func (c *Client) CreateAppointment(ctx context.Context, p AppointmentPayload) (*domain.Appointment, error) {
	return c.createAppointment(ctx, "/appointments", p)
}

// CreateAdminAppointment POST /admin/appointments
func (c *Client) CreateAdminAppointment(ctx context.Context, p AppointmentPayload) (*domain.Appointment, error) {
	return c.createAppointment(ctx, "/admin/appointments", p)
}

func (c *Client) createAppointment(ctx context.Context, path string, p AppointmentPayload) (*domain.Appointment, error) {
	var out domain.Appointment
	if err := c.do(ctx, http.MethodPost, path, nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAppointments GET /appointments - записи текущего пользователя
func (c *Client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePaymentOrder POST /payments/razorpay/order
func (c *Client) CreatePaymentOrder(ctx context.Context, req OrderRequest) (*domain.PaymentOrder, error) {
	var out orderResponse
	if err := c.do(ctx, http.MethodPost, "/payments/razorpay/order", nil, req, &out); err != nil {
		return nil, err
	}

	key := out.Key
	if key == "" {
		key = out.Order.Key
	}

	return &domain.PaymentOrder{
		OrderID:   out.Order.ID,
		PaymentID: out.PaymentID,
		Amount:    out.Order.Amount,
		Currency:  out.Order.Currency,
		Receipt:   out.Order.Receipt,
		Key:       key,
	}, nil
}

// VerifyPayment POST /payments/razorpay/verify.
// success=false в ответе - не ошибка, а Verified=false.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	env, err := c.doEnvelope(ctx, http.MethodPost, "/payments/razorpay/verify", nil, req)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Verified: env.Success, Message: env.Message, Data: env.Data}, nil
}

// do выполняет запрос и раскладывает data в out. success=false - *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	env, err := c.doEnvelope(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if !env.Success {
		return &APIError{StatusCode: http.StatusOK, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data of %s %s: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}

func (c *Client) doEnvelope(ctx context.Context, method, path string, query url.Values, body interface{}) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("MediCareAPI: %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	default:
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = domain.GenericErrorMessage
		}
		c.log.Warn("MediCareAPI: %s %s returned %d: %s", method, path, resp.StatusCode, msg)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &envelope{Success: true}, nil
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, decodeErr)
	}
	return &env, nil
}

func setString(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}

func setFloat(q url.Values, key string, value *float64) {
	if value != nil {
		q.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}
