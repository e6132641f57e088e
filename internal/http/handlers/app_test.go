package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"givehope/internal/domain"
)

func TestStatusForDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrCampaignInactive, http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{&domain.InsufficientFundsError{Collected: 100, Spent: 100, Attempted: 1}, http.StatusBadRequest},
		{domain.ErrUpstream, http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Errorf("statusFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestStatusForUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("verify donation: %w", domain.ErrNotFound)
	if got := statusFor(wrapped); got != http.StatusNotFound {
		t.Fatalf("statusFor(wrapped) = %d, want 404", got)
	}
}
