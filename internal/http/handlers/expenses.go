package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"givehope/internal/domain"
	"givehope/internal/mailer"
	"givehope/internal/sqlinline"
)

type expenseDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newExpenseDTO(e domain.Expense) expenseDTO {
	return expenseDTO{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.SpentAt,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

type createExpenseRequest struct {
	Title       string `json:"title"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ExpensesCreate logs an expenditure, subject to the solvency check: total
// spend may never exceed total verified collections. The check and the
// insert are separate statements, so two concurrent inserts can still
// jointly overdraw; that race is inherited from the source design and left
// open deliberately.
func (a *App) ExpensesCreate(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" || req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "title and a positive amount are required")
		return
	}
	spentAt := req.Date
	if spentAt == "" {
		spentAt = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", spentAt); err != nil {
		a.error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var collected, spent int64
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QSumCollected).Scan(&collected); err != nil {
		a.Logger.Error().Err(err).Msg("sum collected failed")
		a.error(w, http.StatusInternalServerError, "Server error while logging expense")
		return
	}
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QSumSpent).Scan(&spent); err != nil {
		a.Logger.Error().Err(err).Msg("sum spent failed")
		a.error(w, http.StatusInternalServerError, "Server error while logging expense")
		return
	}

	if spent+req.Amount > collected {
		insufficient := &domain.InsufficientFundsError{Collected: collected, Spent: spent, Attempted: req.Amount}
		a.Logger.Warn().Err(insufficient).Msg("expense rejected")
		a.fail(w, insufficient, insufficientFundsMsg(insufficient))
		return
	}

	date, _ := time.Parse("2006-01-02", spentAt)
	e := domain.Expense{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		SpentAt:     date,
		Description: req.Description,
	}
	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertExpense,
		e.Title, e.Amount, e.Category, spentAt, e.Description)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		a.Logger.Error().Err(err).Msg("insert expense failed")
		a.error(w, http.StatusInternalServerError, "Server error while logging expense")
		return
	}

	a.json(w, http.StatusCreated, newExpenseDTO(e))
}

func insufficientFundsMsg(e *domain.InsufficientFundsError) string {
	return "Insufficient Funds! You have collected " + mailer.FormatAmount(e.Collected) +
		" but spent " + mailer.FormatAmount(e.Spent) +
		". Cannot spend another " + mailer.FormatAmount(e.Attempted) + "."
}

// ExpensesList is public: the transparency timeline shows every spend.
func (a *App) ExpensesList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListExpenses)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	defer rows.Close()

	items := []expenseDTO{}
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.SpentAt, &e.Description, &e.CreatedAt); err != nil {
			a.Logger.Error().Err(err).Msg("scan expense failed")
			a.error(w, http.StatusInternalServerError, "failed to load expenses")
			return
		}
		items = append(items, newExpenseDTO(e))
	}
	if err := rows.Err(); err != nil {
		a.error(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) ExpensesStats(w http.ResponseWriter, r *http.Request) {
	var spent int64
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QSumSpent).Scan(&spent); err != nil {
		a.Logger.Error().Err(err).Msg("sum spent failed")
		a.error(w, http.StatusInternalServerError, "failed to load expense stats")
		return
	}
	a.json(w, http.StatusOK, map[string]int64{"totalSpent": spent})
}
