package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the gateway-reported state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// Payment is one payment record.
type Payment struct {
	Reference string        `json:"reference"`
	OrderID   string        `json:"order_id"`
	UserID    string        `json:"user_id"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// InitializePaymentRequest starts a payment for an order. Reference is the
// client-generated idempotency handle; left empty, one is generated.
type InitializePaymentRequest struct {
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency,omitempty"`
	Reference string  `json:"reference,omitempty"`
}

// PaymentInit is the gateway hand-off returned by initialize.
type PaymentInit struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// PaymentService is the /payments resource client. Gateway internals stay on
// the backend; this client only initializes, verifies, and lists.
type PaymentService struct {
	client *Client
}

// NewPaymentService wraps the low-level client.
func NewPaymentService(client *Client) *PaymentService {
	return &PaymentService{client: client}
}

// Initialize starts a payment and returns the gateway hand-off.
func (s *PaymentService) Initialize(ctx context.Context, req InitializePaymentRequest) (*PaymentInit, error) {
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}
	var out PaymentInit
	if err := s.client.send(ctx, http.MethodPost, "/payments/initialize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify checks a payment's state by reference.
func (s *PaymentService) Verify(ctx context.Context, reference string) (*Payment, error) {
	var out Payment
	if err := s.client.get(ctx, "/payments/verify/"+reference, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the caller's payments.
func (s *PaymentService) List(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := s.client.get(ctx, "/payments", &out); err != nil {
		return nil, err
	}
	return out, nil
}
