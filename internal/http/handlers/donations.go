package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"givehope/internal/domain"
	"givehope/internal/payments"
	"givehope/internal/sqlinline"
)

type checkoutRequest struct {
	Amount     int64  `json:"amount"`
	CampaignID string `json:"campaignId"`
}

// DonationsCreateCheckoutSession persists a pending donation and opens a
// hosted checkout for it. The donation id travels in the success redirect
// so the client can come back and verify. If the provider call fails the
// pending row stays behind; there is no reconciliation for such orphans.
func (a *App) DonationsCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Amount <= 0 {
		a.fail(w, domain.ErrInvalidAmount, "amount must be positive")
		return
	}
	userID := a.currentUserID(r)

	if req.CampaignID != "" {
		row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectActiveCampaign, req.CampaignID)
		var id string
		if err := row.Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				a.fail(w, domain.ErrCampaignInactive, "Campaign not found or inactive")
				return
			}
			a.Logger.Error().Err(err).Msg("select campaign failed")
			a.error(w, http.StatusInternalServerError, "failed to create donation")
			return
		}
	}

	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertDonation,
		userID, req.CampaignID, req.Amount, "INR", a.donorCountry(r))
	var donationID string
	if err := row.Scan(&donationID); err != nil {
		a.Logger.Error().Err(err).Msg("insert donation failed")
		a.error(w, http.StatusInternalServerError, "failed to create donation")
		return
	}

	// {CHECKOUT_SESSION_ID} is substituted by the provider on redirect.
	successURL := fmt.Sprintf("%s/payment-success?session_id={CHECKOUT_SESSION_ID}&donation_id=%s&campaign_id=%s",
		a.ClientURL, donationID, req.CampaignID)
	session, err := a.Checkout.CreateSession(r.Context(), payments.CreateSessionParams{
		Amount:      req.Amount,
		Currency:    "INR",
		ProductName: "NGO Donation",
		SuccessURL:  successURL,
		CancelURL:   a.ClientURL + "/payment-failure",
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("donation_id", donationID).Msg("checkout session failed, donation left pending")
		a.fail(w, domain.ErrUpstream, "payment provider error")
		return
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QSetDonationOrder, donationID, session.ID); err != nil {
		a.Logger.Error().Err(err).Str("donation_id", donationID).Msg("persist order id failed")
		a.error(w, http.StatusInternalServerError, "failed to create donation")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"url": session.URL})
}

type verifyRequest struct {
	SessionID  string `json:"session_id"`
	DonationID string `json:"donation_id"`
	CampaignID string `json:"campaign_id"`
}

// DonationsVerifyPayment settles a pending donation against the provider's
// status. Verification is idempotent: a donation already in a terminal
// state is reported as-is and the campaign total is never touched again.
// The campaign credited is the one stored on the donation row, not the one
// named in the request.
func (a *App) DonationsVerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.SessionID == "" || req.DonationID == "" {
		a.error(w, http.StatusBadRequest, "session_id and donation_id are required")
		return
	}

	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectDonationForVerify, req.DonationID)
	var ownerID string
	var campaignID *string
	var amount int64
	var status string
	if err := row.Scan(&ownerID, &campaignID, &amount, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.fail(w, domain.ErrNotFound, "Donation not found")
			return
		}
		a.Logger.Error().Err(err).Msg("select donation failed")
		a.error(w, http.StatusInternalServerError, "failed to verify payment")
		return
	}
	caller := a.currentUser(r)
	if ownerID != caller.ID && !caller.IsAdmin() {
		a.fail(w, domain.ErrForbidden, "not your donation")
		return
	}
	if status != string(domain.DonationPending) {
		a.json(w, http.StatusOK, map[string]string{"status": status})
		return
	}

	session, err := a.Checkout.GetSession(r.Context(), req.SessionID)
	if err != nil {
		a.Logger.Error().Err(err).Str("session_id", req.SessionID).Msg("retrieve checkout session failed")
		a.fail(w, domain.ErrUpstream, "payment provider error")
		return
	}

	if !session.Paid() {
		if _, err := a.SQL.Exec(r.Context(), sqlinline.QMarkDonationFailed, req.DonationID); err != nil {
			a.Logger.Error().Err(err).Msg("mark donation failed errored")
			a.error(w, http.StatusInternalServerError, "failed to verify payment")
			return
		}
		a.json(w, http.StatusOK, map[string]string{"status": string(domain.DonationFailed)})
		return
	}

	// Conditional update: only a still-pending donation transitions. No row
	// back means a concurrent verify already settled it, so re-read and
	// report whatever terminal state it landed in.
	row = a.SQL.QueryRow(r.Context(), sqlinline.QMarkDonationSuccess, req.DonationID, session.PaymentIntent)
	var settledCampaign *string
	var settledAmount int64
	if err := row.Scan(&settledCampaign, &settledAmount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			row = a.SQL.QueryRow(r.Context(), sqlinline.QSelectDonationForVerify, req.DonationID)
			if err := row.Scan(&ownerID, &campaignID, &amount, &status); err != nil {
				a.Logger.Error().Err(err).Msg("re-read settled donation failed")
				a.error(w, http.StatusInternalServerError, "failed to verify payment")
				return
			}
			a.json(w, http.StatusOK, map[string]string{"status": status})
			return
		}
		a.Logger.Error().Err(err).Msg("mark donation success failed")
		a.error(w, http.StatusInternalServerError, "failed to verify payment")
		return
	}

	if settledCampaign != nil {
		if _, err := a.SQL.Exec(r.Context(), sqlinline.QIncrementCampaignRaised, *settledCampaign, settledAmount); err != nil {
			// The donation is already success; surfacing an error here would
			// invite a retry that can never increment again. Log and move on.
			a.Logger.Error().Err(err).Str("campaign_id", *settledCampaign).Msg("increment raised amount failed")
		}
	}

	if a.Mailer != nil {
		go a.sendReceipt(context.WithoutCancel(r.Context()), ownerID, settledAmount)
	}

	a.json(w, http.StatusOK, map[string]string{"status": string(domain.DonationSuccess)})
}

// sendReceipt is fire-and-forget: verification has committed, so failures
// are logged and never reported to the donor-facing request.
func (a *App) sendReceipt(ctx context.Context, userID string, amount int64) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	row := a.SQL.QueryRow(ctx, sqlinline.QSelectUserContact, userID)
	var name, email string
	if err := row.Scan(&name, &email); err != nil {
		a.Logger.Warn().Err(err).Str("user_id", userID).Msg("receipt skipped, donor lookup failed")
		return
	}
	if err := a.Mailer.SendReceipt(ctx, email, name, amount); err != nil {
		a.Logger.Warn().Err(err).Str("user_id", userID).Msg("receipt mail failed but payment was success")
	}
}

type donationHistoryDTO struct {
	ID            string    `json:"id"`
	CampaignID    *string   `json:"campaignId"`
	CampaignTitle string    `json:"campaignTitle,omitempty"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentID     string    `json:"paymentId,omitempty"`
	OrderID       string    `json:"orderId,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *App) DonationsMyHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListDonationsByUser, a.currentUserID(r))
	if err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load donations")
		return
	}
	defer rows.Close()

	items := []donationHistoryDTO{}
	for rows.Next() {
		var d domain.Donation
		var title, status string
		if err := rows.Scan(&d.ID, &d.CampaignID, &title, &d.Amount, &d.Currency, &d.PaymentID, &d.OrderID, &status, &d.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan donation failed")
			a.error(w, http.StatusInternalServerError, "failed to load donations")
			return
		}
		d.Status = domain.DonationStatus(status)
		items = append(items, donationHistoryDTO{
			ID:            d.ID,
			CampaignID:    d.CampaignID,
			CampaignTitle: title,
			Amount:        d.Amount,
			Currency:      d.Currency,
			PaymentID:     d.PaymentID,
			OrderID:       d.OrderID,
			Status:        string(d.Status),
			CreatedAt:     d.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load donations")
		return
	}
	a.json(w, http.StatusOK, items)
}

// donorCountry best-effort resolves the caller's country for the
// transparency dashboard. Any failure just leaves it empty.
func (a *App) donorCountry(r *http.Request) string {
	if a.Geo == nil {
		return ""
	}
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	country, err := a.Geo.Country(host)
	if err != nil {
		return ""
	}
	return country
}
