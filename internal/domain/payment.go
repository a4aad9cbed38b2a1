package domain

// PaymentOrder is an order created by the API for the payment provider
type PaymentOrder struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Amount    int64  `json:"amount"` // in currency subunits
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Key       string `json:"key"`
}

// CheckoutOptions is what the browser widget needs to open a checkout
type CheckoutOptions struct {
	Key           string            `json:"key"`
	OrderID       string            `json:"orderId"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	MerchantName  string            `json:"name"`
	Description   string            `json:"description"`
	AppointmentID string            `json:"appointmentId"`
	Notes         map[string]string `json:"notes,omitempty"`
}

// PaymentResult is what the provider hands back on a completed checkout
type PaymentResult struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
