package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/buildsetu/buildsetu-backend/pkg/config"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

// Action names the automation the script should run.
type Action string

const (
	// ActionCreateRequest mirrors the legacy client-side request intake.
	ActionCreateRequest Action = "CREATE_REQUEST"
	// ActionSendToSupplier notifies suppliers that a request opened.
	ActionSendToSupplier Action = "SEND_TO_SUPPLIER"
)

// Message is the envelope forwarded to the automation script.
type Message struct {
	Role    string          `json:"role"`
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Forwarder relays admin automation messages to the configured script URL.
type Forwarder struct {
	cfg    config.AutomationConfig
	client *http.Client
}

// NewForwarder builds the automation forwarder.
func NewForwarder(cfg config.AutomationConfig) (*Forwarder, error) {
	if cfg.ScriptURL == "" {
		return nil, fmt.Errorf("automation script url is required")
	}
	return &Forwarder{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Send posts the message and returns the script's raw JSON response.
func (f *Forwarder) Send(ctx context.Context, role string, action Action, payload json.RawMessage) (json.RawMessage, error) {
	if action == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "automation action required")
	}
	if role == "" {
		role = "admin"
	}
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	body, err := json.Marshal(Message{
		Role:    role,
		Action:  action,
		Payload: payload,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode automation message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.ScriptURL, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build automation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call automation script")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read automation response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("automation script returned %d", resp.StatusCode))
	}
	if !json.Valid(raw) {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "automation script returned invalid JSON")
	}
	return json.RawMessage(raw), nil
}
