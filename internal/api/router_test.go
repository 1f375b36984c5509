package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skisyula/jobify-be/internal/auth"
	"github.com/skisyula/jobify-be/internal/database"
	"github.com/skisyula/jobify-be/internal/services"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db, err := database.New("file::memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return newRouterOn(db)
}

func newRouterOn(db *sql.DB) *chi.Mux {
	tokenService := auth.NewTokenService("test-secret-key", time.Hour)
	return NewRouter(
		services.NewUserService(db),
		services.NewJobService(db),
		tokenService,
		"http://localhost:3000",
	)
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type authBody struct {
	User struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		LastName string `json:"lastName"`
		Location string `json:"location"`
	} `json:"user"`
	Token string `json:"token"`
}

func decodeAuth(t *testing.T, rec *httptest.ResponseRecorder) authBody {
	t.Helper()
	var body authBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

// The full register/login/jobs round trip.
func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	// Register.
	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	registered := decodeAuth(t, rec)
	if registered.User.Email != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %q", registered.User.Email)
	}
	if registered.Token == "" {
		t.Error("expected a token on registration")
	}
	if strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Errorf("response must not carry any password material: %s", rec.Body.String())
	}

	// Login with the wrong password.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid Credentials") {
		t.Errorf("expected 'Invalid Credentials' body, got %s", rec.Body.String())
	}

	// Login with a nonexistent email fails the same way.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "nobody@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "Invalid Credentials") {
		t.Errorf("unknown email must fail identically, got %d %s", rec.Code, rec.Body.String())
	}

	// Login with the right password.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	loggedIn := decodeAuth(t, rec)
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login resolved a different user: %q vs %q", loggedIn.User.ID, registered.User.ID)
	}

	// The token opens the jobs routes.
	rec = doJSON(t, r, http.MethodGet, "/api/v1/jobs", loggedIn.Token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with bearer token, got %d", rec.Code)
	}

	// No header means no entry.
	rec = doJSON(t, r, http.MethodGet, "/api/v1/jobs", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please provide all values") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]string{"name": "Alice", "email": "a@x.com", "password": "secret1"}
	if rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", payload); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", payload)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already in use") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateUser(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	registered := decodeAuth(t, rec)

	// Updating requires all four profile fields.
	rec = doJSON(t, r, http.MethodPatch, "/api/v1/auth/updateUser", registered.Token, map[string]string{
		"name": "Alicia", "email": "a@x.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for partial payload, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodPatch, "/api/v1/auth/updateUser", registered.Token, map[string]string{
		"name": "Alicia", "email": "alicia@x.com", "lastName": "Smith", "location": "Mombasa, Kenya",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeAuth(t, rec)
	if updated.User.Name != "Alicia" || updated.User.Email != "alicia@x.com" ||
		updated.User.LastName != "Smith" || updated.User.Location != "Mombasa, Kenya" {
		t.Errorf("profile fields not applied: %+v", updated.User)
	}
	if updated.Token == "" {
		t.Error("expected a reissued token")
	}

	// Without a token the route is closed.
	rec = doJSON(t, r, http.MethodPatch, "/api/v1/auth/updateUser", "", map[string]string{
		"name": "Alicia", "email": "alicia@x.com", "lastName": "Smith", "location": "Mombasa, Kenya",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", rec.Code)
	}
}

func TestJobCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	token := decodeAuth(t, rec).Token

	rec = doJSON(t, r, http.MethodPost, "/api/v1/jobs", token, map[string]string{
		"company": "Acme", "position": "Gopher",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("failed to decode job: %v", err)
	}
	if job.Status != "pending" {
		t.Errorf("expected default status pending, got %q", job.Status)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/jobs", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list struct {
		Jobs  []json.RawMessage `json:"jobs"`
		Count int               `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if list.Count != 1 || len(list.Jobs) != 1 {
		t.Errorf("expected one job, got %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPatch, "/api/v1/jobs/"+job.ID, token, map[string]string{
		"company": "Acme", "position": "Gopher", "status": "interview",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/v1/jobs/"+job.ID, token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/nothing-here", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Route does not exist") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
