package initiate_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/internal/payment"
)

// UseCase use case для оплаты записи.
// Статус записи не меняется, пока API не подтвердило платёж.
type UseCase struct {
	api      PaymentClient
	widget   Collaborator
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(api PaymentClient, widget Collaborator, notifier Notifier, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		api:      api,
		widget:   widget,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute создаёт заказ и открывает окно оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	appointmentID := strings.TrimSpace(req.AppointmentID)
	if appointmentID == "" {
		return nil, fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	uc.logger.Info("InitiatePayment: appointment=%s, test=%t", appointmentID, req.IsTest)

	// 2. Создаём заказ
	order, err := uc.api.CreatePaymentOrder(ctx, apiClient.OrderRequest{AppointmentID: appointmentID, IsTest: req.IsTest})
	if err != nil {
		return nil, uc.fail(ctx, appointmentID, uc.mapOrderError(err))
	}

	// 3. Без ключа провайдера окно не открыть
	if order.Key == "" {
		uc.logger.Error("InitiatePayment: order=%s has no provider key", order.OrderID)
		return nil, uc.fail(ctx, appointmentID, ErrMissingKey)
	}

	// 4. Открываем окно оплаты
	opts := domain.CheckoutOptions{
		Key:           order.Key,
		OrderID:       order.OrderID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		MerchantName:  MerchantName,
		Description:   CheckoutDescription,
		AppointmentID: appointmentID,
		Notes:         map[string]string{"appointmentId": appointmentID},
	}

	checkout, err := uc.widget.Open(ctx, opts, uc.onSuccess(order.PaymentID, req.IsTest), uc.onFailure(appointmentID))
	if err != nil {
		uc.logger.Error("InitiatePayment: failed to open checkout for order=%s: %v", order.OrderID, err)
		return nil, uc.fail(ctx, appointmentID, fmt.Errorf("%w: failed to open checkout: %v", ErrInternal, err))
	}

	uc.incEvent(OutcomeOpened)
	uc.logger.Info("InitiatePayment: checkout opened order=%s amount=%d", order.OrderID, order.Amount)

	return &Response{
		Checkout:      checkout,
		DisplayAmount: payment.FormatAmount(float64(order.Amount) / 100),
	}, nil
}

// onSuccess проверяет подпись платежа через API
func (uc *UseCase) onSuccess(paymentID string, isTest bool) payment.SuccessFunc {
	return func(ctx context.Context, result domain.PaymentResult) {
		verified, err := uc.api.VerifyPayment(ctx, apiClient.VerifyRequest{
			PaymentID:     paymentID,
			PaymentResult: result,
			IsTest:        isTest,
		})
		if err != nil {
			uc.logger.Error("InitiatePayment: failed to verify payment=%s: %v", paymentID, err)
			uc.incEvent(OutcomeVerificationFailed)
			uc.notifier.Error(failureMessage(err))
			return
		}
		if !verified.Verified {
			uc.logger.Warn("InitiatePayment: payment=%s not verified: %s", paymentID, verified.Message)
			uc.incEvent(OutcomeVerificationFailed)
			uc.notifier.Error(failureMessage(errors.New(verified.Message)))
			return
		}

		uc.logger.Info("InitiatePayment: payment=%s verified", paymentID)
		uc.incEvent(OutcomeVerified)
		uc.notifier.Success(SuccessMessage)
	}
}

// onFailure отмена или истечение окна оплаты
func (uc *UseCase) onFailure(appointmentID string) payment.FailureFunc {
	return func(ctx context.Context, err error) {
		if errors.Is(err, payment.ErrCancelled) {
			uc.incEvent(OutcomeCancelled)
		} else {
			uc.incEvent(OutcomeFailed)
		}
		uc.logger.Warn("InitiatePayment: appointment=%s payment failed: %v", appointmentID, err)
		uc.notifier.Error(failureMessage(err))
	}
}

// fail уведомляет пользователя о неудаче до открытия окна
func (uc *UseCase) fail(_ context.Context, appointmentID string, err error) error {
	uc.incEvent(OutcomeFailed)
	uc.logger.Warn("InitiatePayment: appointment=%s: %v", appointmentID, err)
	uc.notifier.Error(failureMessage(err))
	return err
}

func (uc *UseCase) mapOrderError(err error) error {
	var apiErr *apiClient.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrOrderRejected, apiErr)
	}
	return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
}

func (uc *UseCase) incEvent(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncPaymentEvent(outcome)
	}
}

// failureMessage "Payment failed: <причина>"; для ответа API берётся его message
func failureMessage(err error) string {
	var apiErr *apiClient.APIError
	if errors.As(err, &apiErr) {
		return "Payment failed: " + apiErr.Message
	}
	if errors.Is(err, ErrInternal) {
		return "Payment failed: " + domain.GenericErrorMessage
	}
	msg := err.Error()
	if msg == "" {
		msg = domain.GenericErrorMessage
	}
	return "Payment failed: " + msg
}
