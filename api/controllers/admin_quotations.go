package controllers

import (
	"net/http"

	"github.com/buildsetu/buildsetu-backend/api/responses"
	"github.com/buildsetu/buildsetu-backend/api/validators"
	"github.com/buildsetu/buildsetu-backend/internal/quotations"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
	"github.com/buildsetu/buildsetu-backend/pkg/logger"
)

// AdminQuotationListForRequest returns every quotation received for one
// supplier request.
func AdminQuotationListForRequest(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quotations service unavailable"))
			return
		}

		supplierRequestID, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListForRequest(r.Context(), supplierRequestID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"quotations": list})
	}
}

// AdminQuotationAccept picks the winning quotation, applies per-line margins
// and creates the final order.
func AdminQuotationAccept(svc quotations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quotations service unavailable"))
			return
		}

		quotationID, err := parseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body quotations.AcceptRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Accept(r.Context(), quotations.AcceptInput{
			QuotationID: quotationID,
			Margins:     body.Margins,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
