package domain

import "time"

// DonationStatus enumerates the donation lifecycle. A donation is created
// pending and moves to exactly one terminal state; terminal states never
// change again.
type DonationStatus string

const (
	DonationPending DonationStatus = "pending"
	DonationSuccess DonationStatus = "success"
	DonationFailed  DonationStatus = "failed"
)

// Donation is a single contribution intent. CampaignID is nil for
// general-fund donations. OrderID is the external checkout-session id;
// PaymentID is set only once the provider reports the session as paid.
type Donation struct {
	ID           string
	UserID       string
	CampaignID   *string
	Amount       int64
	Currency     string
	PaymentID    string
	OrderID      string
	Status       DonationStatus
	DonorCountry string
	CreatedAt    time.Time
}
