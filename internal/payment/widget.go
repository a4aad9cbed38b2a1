package payment

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// DefaultTTL сколько открытая оплата ждёт Complete или Dismiss
const DefaultTTL = 30 * time.Minute

// SuccessFunc вызывается один раз, когда провайдер вернул результат оплаты
type SuccessFunc func(ctx context.Context, result domain.PaymentResult)

// FailureFunc вызывается один раз при отмене или истечении оплаты
type FailureFunc func(ctx context.Context, err error)

type checkout struct {
	options   domain.CheckoutOptions
	onSuccess SuccessFunc
	onFailure FailureFunc
	openedAt  time.Time
}

// Widget серверная сторона окна оплаты. Браузер получает опции из Open,
// проводит оплату у провайдера и сообщает исход через Complete или Dismiss.
type Widget struct {
	mu      sync.Mutex
	pending map[string]*checkout
	ttl     time.Duration
	now     func() time.Time
	logger  Logger
}

func NewWidget(ttl time.Duration, logger Logger) *Widget {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Widget{
		pending: make(map[string]*checkout),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Open паркует callbacks под id заказа и возвращает опции для браузера
func (w *Widget) Open(ctx context.Context, opts domain.CheckoutOptions, onSuccess SuccessFunc, onFailure FailureFunc) (domain.CheckoutOptions, error) {
	if opts.OrderID == "" || opts.Key == "" {
		return domain.CheckoutOptions{}, ErrInvalidOptions
	}

	expired := w.expire()
	for _, c := range expired {
		c.onFailure(ctx, ErrExpired)
	}

	w.mu.Lock()
	w.pending[opts.OrderID] = &checkout{
		options:   opts,
		onSuccess: onSuccess,
		onFailure: onFailure,
		openedAt:  w.now(),
	}
	w.mu.Unlock()

	w.logger.Info("PaymentWidget: opened checkout order=%s appointment=%s amount=%d %s",
		opts.OrderID, opts.AppointmentID, opts.Amount, opts.Currency)
	return opts, nil
}

// Complete передаёт результат оплаты в success-callback. Повторный вызов - ErrUnknownOrder.
func (w *Widget) Complete(ctx context.Context, orderID string, result domain.PaymentResult) error {
	if result.OrderID == "" {
		result.OrderID = orderID
	}
	if result.OrderID != orderID {
		return ErrOrderMismatch
	}

	c, ok := w.take(orderID)
	if !ok {
		return ErrUnknownOrder
	}

	w.logger.Info("PaymentWidget: checkout completed order=%s payment=%s", orderID, result.PaymentID)
	c.onSuccess(ctx, result)
	return nil
}

// Dismiss сообщает об отмене оплаты пользователем
func (w *Widget) Dismiss(ctx context.Context, orderID string) error {
	c, ok := w.take(orderID)
	if !ok {
		return ErrUnknownOrder
	}

	w.logger.Info("PaymentWidget: checkout dismissed order=%s", orderID)
	c.onFailure(ctx, ErrCancelled)
	return nil
}

// Pending число открытых оплат
func (w *Widget) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.pending)
}

func (w *Widget) take(orderID string) (*checkout, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.pending[orderID]
	if ok {
		delete(w.pending, orderID)
	}
	return c, ok
}

func (w *Widget) expire() []*checkout {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []*checkout
	deadline := w.now().Add(-w.ttl)
	for id, c := range w.pending {
		if c.openedAt.Before(deadline) {
			delete(w.pending, id)
			out = append(out, c)
			w.logger.Warn("PaymentWidget: checkout order=%s expired", id)
		}
	}
	return out
}

// FormatAmount форматирует сумму для показа: "₹800"
func FormatAmount(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// AmountInSubunits сумма в минимальных единицах валюты (пайсы)
func AmountInSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
