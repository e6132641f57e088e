package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"givehope/internal/domain"
	"givehope/internal/middleware"
	"givehope/internal/sqlinline"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.error(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	// The insert is conditional on the email being free, so the existence
	// check and the insert are a single statement.
	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertUser, req.Name, req.Email, string(hash), req.Phone)
	var userID string
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.fail(w, domain.ErrEmailTaken, "User already exists")
			return
		}
		a.Logger.Error().Err(err).Msg("insert user failed")
		a.error(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	a.json(w, http.StatusCreated, map[string]string{"msg": "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  loginUserDTO `json:"user"`
}

type loginUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserByEmail, req.Email)
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.fail(w, domain.ErrInvalidCredentials, "Invalid credentials")
			return
		}
		a.Logger.Error().Err(err).Msg("select user failed")
		a.error(w, http.StatusInternalServerError, "Server error during login")
		return
	}
	u.Role = domain.UserRole(role)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		a.fail(w, domain.ErrInvalidCredentials, "Invalid credentials")
		return
	}

	token, err := middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      u.ID,
		Role:     string(u.Role),
		Exp:      time.Now().Add(middleware.TokenTTL).Unix(),
		Issuer:   "givehope",
		Audience: "givehope-clients",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "Server error during login")
		return
	}

	a.json(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)},
	})
}
