package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"explore-india/internal/admin"
	"explore-india/internal/auth"
	"explore-india/internal/budget"
	"explore-india/internal/destination"

	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := destination.NewInMemoryRepository(destination.SampleDestinations()...)

	tokens, err := auth.NewTokenManager("router-test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte("Password@123"), bcrypt.MinCost)
	admins := auth.NewInMemoryAdminRepository(auth.Admin{Email: "admin@example.com", PasswordHash: string(hash)})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(Deps{
		Destinations: destination.NewHandler(destination.NewService(catalog)),
		Budget:       budget.NewHandler(budget.NewService(catalog, budget.NewDefaultEstimator())),
		Auth:         auth.NewHandler(auth.NewService(admins, tokens)),
		Admin:        admin.NewHandler(admin.NewService(catalog, logger), nil),
		Tokens:       tokens,
		CORSOrigins:  []string{"http://localhost:5173"},
		Logger:       logger,
	})
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestPublicRoutes(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/destinations", http.StatusOK},
		{http.MethodGet, "/destinations?q=goa", http.StatusOK},
		{http.MethodGet, "/destinations/jaipur", http.StatusOK},
		{http.MethodGet, "/destinations/atlantis", http.StatusNotFound},
		{http.MethodPost, "/destinations/ooty/budget", http.StatusOK},
		{http.MethodPost, "/budget/compare", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/destinations", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAdminLoginThenSubmit(t *testing.T) {
	r := setupRouter(t)

	body, _ := json.Marshal(map[string]string{"email": "admin@example.com", "password": "Password@123"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d", w.Code)
	}

	var login map[string]string
	json.Unmarshal(w.Body.Bytes(), &login)

	form := map[string]any{
		"id":              "ooty",
		"name":            "Ooty",
		"state":           "Tamil Nadu",
		"description":     "Queen of hill stations.",
		"image":           "https://images.example.com/ooty.jpg",
		"bestTimeToVisit": "April to June",
		"budgetMin":       2000,
		"budgetStandard":  4000,
		"budgetLuxury":    8000,
	}
	body, _ = json.Marshal(form)

	req = httptest.NewRequest(http.MethodPost, "/admin/destinations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login["token"])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for existing id, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/admin/destinations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login["token"])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for edit, got %d: %s", w.Code, w.Body.String())
	}
}
