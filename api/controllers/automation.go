package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/buildsetu/buildsetu-backend/api/responses"
	"github.com/buildsetu/buildsetu-backend/internal/automation"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
	"github.com/buildsetu/buildsetu-backend/pkg/logger"
)

const maxAutomationPayload = 1 << 20

// AutomationCreateRequest proxies the legacy client-side request intake to the
// automation script.
func AutomationCreateRequest(fwd *automation.Forwarder, logg *logger.Logger) http.HandlerFunc {
	return forwardAutomation(fwd, logg, "client", automation.ActionCreateRequest)
}

// AutomationSendToSupplier proxies the admin supplier broadcast to the
// automation script.
func AutomationSendToSupplier(fwd *automation.Forwarder, logg *logger.Logger) http.HandlerFunc {
	return forwardAutomation(fwd, logg, "admin", automation.ActionSendToSupplier)
}

func forwardAutomation(fwd *automation.Forwarder, logg *logger.Logger, role string, action automation.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if fwd == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "automation forwarder unavailable"))
			return
		}

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxAutomationPayload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request body"))
			return
		}
		if len(payload) > 0 && !json.Valid(payload) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "request body must be valid JSON"))
			return
		}

		result, err := fwd.Send(r.Context(), role, action, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
