package domain

import "time"

// Campaign is a fundraising target. RaisedAmount is a persisted running
// total of success donations and is only ever mutated by an atomic
// field-level increment during payment verification.
type Campaign struct {
	ID           string
	Title        string
	Description  string
	TargetAmount int64
	RaisedAmount int64
	ImageURL     string
	IsActive     bool
	CreatedAt    time.Time
}
