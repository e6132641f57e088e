package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"givehope/internal/middleware"
	"givehope/internal/sqlinline"
)

type fakeUser struct {
	id           string
	name         string
	email        string
	passwordHash string
	role         string
}

type authSQL struct {
	byEmail map[string]*fakeUser
	nextID  int
}

func newAuthSQL() *authSQL {
	return &authSQL{byEmail: map[string]*fakeUser{}}
}

func (s *authSQL) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, fmt.Errorf("unexpected exec")
}

func (s *authSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	switch query {
	case sqlinline.QInsertUser:
		email := args[1].(string)
		if _, taken := s.byEmail[email]; taken {
			return NoRow()
		}
		s.nextID++
		u := &fakeUser{
			id:           fmt.Sprintf("user-%d", s.nextID),
			name:         args[0].(string),
			email:        email,
			passwordHash: args[2].(string),
			role:         "user",
		}
		s.byEmail[email] = u
		return NewSimpleRow(func(dest ...any) error {
			return scanInto(dest, u.id)
		})
	case sqlinline.QSelectUserByEmail:
		u, ok := s.byEmail[args[0].(string)]
		if !ok {
			return NoRow()
		}
		return NewSimpleRow(func(dest ...any) error {
			return scanInto(dest, u.id, u.name, u.email, u.passwordHash, u.role)
		})
	}
	return NewSimpleRow(func(...any) error {
		return fmt.Errorf("unexpected query_row: %s", query)
	})
}

func (s *authSQL) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("unexpected query")
}

func newAuthApp(store *authSQL) *App {
	return &App{SQL: store, Logger: zerolog.Nop(), JWTSecret: "test-secret"}
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	return httptest.NewRequest(method, target, &buf)
}

func TestRegisterCreatesUser(t *testing.T) {
	store := newAuthSQL()
	app := newAuthApp(store)

	rr := httptest.NewRecorder()
	app.Register(rr, jsonRequest("POST", "/auth/register", map[string]string{
		"name": "Priya Sharma", "email": "priya@example.com", "password": "s3cret", "phone": "9898989898",
	}))

	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201: %s", rr.Code, rr.Body.String())
	}
	u, ok := store.byEmail["priya@example.com"]
	if !ok {
		t.Fatal("user not persisted")
	}
	if u.passwordHash == "s3cret" {
		t.Fatal("password must be hashed, not stored verbatim")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newAuthSQL()
	store.byEmail["priya@example.com"] = &fakeUser{id: "user-1", email: "priya@example.com"}
	app := newAuthApp(store)

	rr := httptest.NewRecorder()
	app.Register(rr, jsonRequest("POST", "/auth/register", map[string]string{
		"name": "Priya Again", "email": "priya@example.com", "password": "other",
	}))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rr.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	if resp["msg"] != "User already exists" {
		t.Fatalf("msg = %q", resp["msg"])
	}
}

func TestRegisterMissingFields(t *testing.T) {
	app := newAuthApp(newAuthSQL())

	cases := []map[string]string{
		{"email": "a@example.com", "password": "x"},
		{"name": "A", "password": "x"},
		{"name": "A", "email": "a@example.com"},
		{"name": "  ", "email": "a@example.com", "password": "x"},
	}
	for i, body := range cases {
		rr := httptest.NewRecorder()
		app.Register(rr, jsonRequest("POST", "/auth/register", body))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: got %d, want 400", i, rr.Code)
		}
	}
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	store := newAuthSQL()
	store.byEmail["admin@example.com"] = &fakeUser{
		id: "user-7", name: "Admin", email: "admin@example.com",
		passwordHash: string(hash), role: "admin",
	}
	app := newAuthApp(store)

	rr := httptest.NewRecorder()
	app.Login(rr, jsonRequest("POST", "/auth/login", map[string]string{
		"email": "admin@example.com", "password": "s3cret",
	}))

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != "user-7" || resp.User.Role != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	claims, err := middleware.VerifyJWT("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Sub != "user-7" || claims.Role != "admin" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	store := newAuthSQL()
	store.byEmail["priya@example.com"] = &fakeUser{
		id: "user-1", name: "Priya", email: "priya@example.com",
		passwordHash: string(hash), role: "user",
	}
	app := newAuthApp(store)

	for i, body := range []map[string]string{
		{"email": "priya@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": "s3cret"},
	} {
		rr := httptest.NewRecorder()
		app.Login(rr, jsonRequest("POST", "/auth/login", body))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: got %d, want 400", i, rr.Code)
		}
		var resp map[string]string
		_ = json.NewDecoder(rr.Body).Decode(&resp)
		if resp["msg"] != "Invalid credentials" {
			t.Fatalf("case %d: msg = %q", i, resp["msg"])
		}
	}
}
