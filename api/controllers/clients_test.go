package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/api/middleware"
	"github.com/buildsetu/buildsetu-backend/internal/clients"
	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
)

type stubClientFinder struct {
	byUserID *models.Client
	byEmail  *models.Client

	gotEmail string
}

func (s *stubClientFinder) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	if s.byUserID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.byUserID, nil
}

func (s *stubClientFinder) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	s.gotEmail = email
	if s.byEmail == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.byEmail, nil
}

func clientMeRequest(userID, email string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/me", nil)
	ctx := req.Context()
	if userID != "" {
		ctx = middleware.WithUserID(ctx, userID)
	}
	if email != "" {
		ctx = middleware.WithEmail(ctx, email)
	}
	return req.WithContext(ctx)
}

func TestClientMeReturnsLinkedProfile(t *testing.T) {
	uid := uuid.New()
	profile := &models.Client{
		ID:      uuid.New(),
		UserID:  &uid,
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	}
	handler := ClientMe(&stubClientFinder{byUserID: profile}, nil)

	w := httptest.NewRecorder()
	handler(w, clientMeRequest(uid.String(), "ravi@example.com"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data clients.ClientDTO `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != profile.ID {
		t.Fatalf("expected client %s, got %s", profile.ID, envelope.Data.ID)
	}
	if envelope.Data.Email != "ravi@example.com" {
		t.Fatalf("unexpected email %q", envelope.Data.Email)
	}
}

func TestClientMeFallsBackToAccountEmail(t *testing.T) {
	profile := &models.Client{
		ID:    uuid.New(),
		Name:  "Ravi Sharma",
		Email: "ravi@example.com",
	}
	finder := &stubClientFinder{byEmail: profile}
	handler := ClientMe(finder, nil)

	w := httptest.NewRecorder()
	handler(w, clientMeRequest(uuid.NewString(), "ravi@example.com"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if finder.gotEmail != "ravi@example.com" {
		t.Fatalf("expected lookup by account email, got %q", finder.gotEmail)
	}
}

func TestClientMeUnknownProfileIsNotFound(t *testing.T) {
	handler := ClientMe(&stubClientFinder{}, nil)

	w := httptest.NewRecorder()
	handler(w, clientMeRequest(uuid.NewString(), "nobody@example.com"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestClientMeRequiresUserContext(t *testing.T) {
	handler := ClientMe(&stubClientFinder{}, nil)

	w := httptest.NewRecorder()
	handler(w, clientMeRequest("", ""))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
