package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"givehope/internal/domain"
	"givehope/internal/sqlinline"
)

type campaignDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetAmount int64     `json:"targetAmount"`
	RaisedAmount int64     `json:"raisedAmount"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		TargetAmount: c.TargetAmount,
		RaisedAmount: c.RaisedAmount,
		ImageURL:     c.ImageURL,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListActiveCampaigns)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load campaigns")
		return
	}
	defer rows.Close()

	items := []campaignDTO{}
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.TargetAmount, &c.RaisedAmount, &c.ImageURL, &c.IsActive, &c.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan campaign failed")
			a.error(w, http.StatusInternalServerError, "failed to load campaigns")
			return
		}
		items = append(items, newCampaignDTO(c))
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load campaigns")
		return
	}
	a.json(w, http.StatusOK, items)
}

type createCampaignRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TargetAmount int64  `json:"targetAmount"`
	ImageURL     string `json:"imageUrl"`
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" || req.TargetAmount <= 0 {
		a.error(w, http.StatusBadRequest, "title and a positive targetAmount are required")
		return
	}

	c := domain.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertCampaign, c.Title, c.Description, c.TargetAmount, c.ImageURL)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		a.Logger.Error().Err(err).Msg("insert campaign failed")
		a.error(w, http.StatusInternalServerError, "failed to create campaign")
		return
	}

	a.json(w, http.StatusCreated, newCampaignDTO(c))
}
