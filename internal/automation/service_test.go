package automation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildsetu/buildsetu-backend/pkg/config"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

func newTestForwarder(t *testing.T, url string) *Forwarder {
	t.Helper()
	fwd, err := NewForwarder(config.AutomationConfig{
		ScriptURL: url,
		Timeout:   5 * time.Second,
	})
	if err != nil {
		t.Fatalf("new forwarder: %v", err)
	}
	return fwd
}

func TestSendBuildsEnvelope(t *testing.T) {
	var got Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode envelope: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	fwd := newTestForwarder(t, server.URL)
	resp, err := fwd.Send(context.Background(), "client", ActionCreateRequest, json.RawMessage(`{"request_id":"abc"}`))
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if got.Role != "client" {
		t.Fatalf("expected client role, got %q", got.Role)
	}
	if got.Action != ActionCreateRequest {
		t.Fatalf("expected create request action, got %q", got.Action)
	}
	if string(got.Payload) != `{"request_id":"abc"}` {
		t.Fatalf("payload not forwarded verbatim: %s", got.Payload)
	}
	if string(resp) != `{"status":"queued"}` {
		t.Fatalf("unexpected response %s", resp)
	}
}

func TestSendDefaultsRoleToAdmin(t *testing.T) {
	var got Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	fwd := newTestForwarder(t, server.URL)
	if _, err := fwd.Send(context.Background(), "", ActionSendToSupplier, nil); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.Role != "admin" {
		t.Fatalf("expected admin default role, got %q", got.Role)
	}
	if string(got.Payload) != `{}` {
		t.Fatalf("expected empty object payload, got %s", got.Payload)
	}
}

func TestSendRequiresAction(t *testing.T) {
	fwd := newTestForwarder(t, "http://127.0.0.1:0")
	_, err := fwd.Send(context.Background(), "admin", "", nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSendSurfacesScriptFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	fwd := newTestForwarder(t, server.URL)
	_, err := fwd.Send(context.Background(), "admin", ActionSendToSupplier, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestSendRejectsNonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	fwd := newTestForwarder(t, server.URL)
	_, err := fwd.Send(context.Background(), "admin", ActionSendToSupplier, nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
