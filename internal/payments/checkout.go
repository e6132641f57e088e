package payments

import "context"

// Session is the provider's view of a hosted checkout.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	PaymentIntent string
}

// Paid reports whether the provider captured funds for this session.
func (s *Session) Paid() bool {
	return s != nil && s.PaymentStatus == "paid"
}

// CreateSessionParams describes a checkout to open. Amount is in whole
// currency units; the provider client converts to minor units.
type CreateSessionParams struct {
	Amount      int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

// CheckoutProvider is the bridge to the hosted payment provider.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
