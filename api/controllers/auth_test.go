package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/api/middleware"
	"github.com/buildsetu/buildsetu-backend/internal/auth"
	"github.com/buildsetu/buildsetu-backend/internal/users"
	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

type stubAuthService struct {
	resp       *auth.LoginResponse
	err        error
	gotRole    enums.Role
	gotRequest *auth.RegisterRequest
}

func (s *stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	s.gotRequest = &req
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) SelectRole(ctx context.Context, userID uuid.UUID, role enums.Role) (*auth.LoginResponse, error) {
	s.gotRole = role
	return s.resp, s.err
}

func sampleLoginResponse(role enums.Role) *auth.LoginResponse {
	user := &models.User{
		ID:    uuid.New(),
		Email: "member@example.com",
		Name:  "Member",
		Role:  role,
	}
	return &auth.LoginResponse{
		AccessToken: "access-token",
		User:        users.FromModel(user),
	}
}

func TestAuthRegisterSuccess(t *testing.T) {
	svc := &stubAuthService{resp: sampleLoginResponse("")}
	handler := AuthRegister(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte(`{"name":"Asha","email":"asha@example.com","password":"Secret123!"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-BS-Token"); got != "access-token" {
		t.Fatalf("expected token header set, got %q", got)
	}

	var envelope struct {
		Data struct {
			AccessToken string         `json:"access_token"`
			User        *users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User == nil || envelope.Data.User.Email != "member@example.com" {
		t.Fatalf("expected user in payload got %+v", envelope.Data.User)
	}
}

func TestAuthRegisterInvalidPayload(t *testing.T) {
	handler := AuthRegister(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte(`{"password":"Secret123!"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginPassesThroughServiceError(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	handler := AuthLogin(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"asha@example.com","password":"wrong"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSelectRoleParsesRole(t *testing.T) {
	svc := &stubAuthService{resp: sampleLoginResponse(enums.RoleSupplier)}
	handler := AuthSelectRole(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/select-role", bytes.NewReader([]byte(`{"role":"supplier"}`)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotRole != enums.RoleSupplier {
		t.Fatalf("expected supplier role passed to service, got %q", svc.gotRole)
	}
	if got := resp.Header().Get("X-BS-Token"); got != "access-token" {
		t.Fatalf("expected refreshed token header, got %q", got)
	}
}

func TestAuthSelectRoleRejectsUnknownRole(t *testing.T) {
	handler := AuthSelectRole(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/select-role", bytes.NewReader([]byte(`{"role":"superuser"}`)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthSelectRoleRequiresUserContext(t *testing.T) {
	handler := AuthSelectRole(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/select-role", bytes.NewReader([]byte(`{"role":"client"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
