package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrCampaignInactive   = errors.New("campaign not found or inactive")
	ErrUpstream           = errors.New("payment provider failure")
)

// InsufficientFundsError rejects an expense that would overdraw the ledger.
// It carries the aggregate figures so callers can surface them verbatim.
type InsufficientFundsError struct {
	Collected int64
	Spent     int64
	Attempted int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: collected %d, spent %d, cannot spend another %d",
		e.Collected, e.Spent, e.Attempted)
}
