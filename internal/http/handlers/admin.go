package handlers

import (
	"net/http"
	"time"

	"givehope/internal/sqlinline"
)

// AdminStats returns the dashboard headline figures: donor account count
// and the sum of verified donations.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	var totalUsers, totalDonations int64
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QAdminStats).Scan(&totalUsers, &totalDonations); err != nil {
		a.Logger.Error().Err(err).Msg("admin stats failed")
		a.error(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]int64{
		"totalUsers":     totalUsers,
		"totalDonations": totalDonations,
	})
}

type registryUserDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalDonated int64     `json:"totalDonated"`
}

// AdminUsers lists donor accounts newest-first with their verified totals.
// Pending and failed donations never count toward totalDonated.
func (a *App) AdminUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QAdminUserRegistry)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	defer rows.Close()

	items := []registryUserDTO{}
	for rows.Next() {
		var u registryUserDTO
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt, &u.TotalDonated); err != nil {
			a.Logger.Error().Err(err).Msg("scan registry user failed")
			a.error(w, http.StatusInternalServerError, "failed to load users")
			return
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	a.json(w, http.StatusOK, items)
}

type ledgerEntryDTO struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	DonorName    string    `json:"donorName"`
	DonorEmail   string    `json:"donorEmail"`
	CampaignID   *string   `json:"campaignId"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	PaymentID    string    `json:"paymentId,omitempty"`
	OrderID      string    `json:"orderId,omitempty"`
	Status       string    `json:"status"`
	DonorCountry string    `json:"donorCountry,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminDonations returns the full transaction log with donor identity
// denormalized onto each row, newest-first.
func (a *App) AdminDonations(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QAdminDonationLedger)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load donations")
		return
	}
	defer rows.Close()

	items := []ledgerEntryDTO{}
	for rows.Next() {
		var d ledgerEntryDTO
		if err := rows.Scan(&d.ID, &d.UserID, &d.DonorName, &d.DonorEmail, &d.CampaignID,
			&d.Amount, &d.Currency, &d.PaymentID, &d.OrderID, &d.Status, &d.DonorCountry, &d.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan ledger entry failed")
			a.error(w, http.StatusInternalServerError, "failed to load donations")
			return
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load donations")
		return
	}
	a.json(w, http.StatusOK, items)
}
