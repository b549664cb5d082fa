package quotations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// QuoteItemInput is one priced line in a supplier's submission. The triple of
// product, variant and specification must match a line on the request.
type QuoteItemInput struct {
	ProductID     string          `json:"product_id" validate:"required"`
	Variant       string          `json:"variant" validate:"required"`
	Specification string          `json:"specification" validate:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"required"`
}

// SubmitRequest is the payload for a supplier quotation.
type SubmitRequest struct {
	SupplierRequestID uuid.UUID        `json:"supplier_request_id" validate:"required"`
	Items             []QuoteItemInput `json:"items" validate:"required,min=1,dive"`
}

// SubmitInput carries the authenticated supplier plus the payload.
type SubmitInput struct {
	SupplierEmail string
	Request       SubmitRequest
}

// AcceptRequest is the admin payload for accepting a quotation. Margins run
// parallel to the quotation's line items.
type AcceptRequest struct {
	Margins []decimal.Decimal `json:"margins" validate:"required,min=1"`
}

// AcceptInput identifies the winning quotation and the margins to apply.
type AcceptInput struct {
	QuotationID uuid.UUID
	Margins     []decimal.Decimal
}

// QuotationDTO is the transport shape for a quotation.
type QuotationDTO struct {
	ID                uuid.UUID             `json:"id"`
	SupplierRequestID uuid.UUID             `json:"supplier_request_id"`
	ClientID          uuid.UUID             `json:"client_id"`
	SupplierEmail     string                `json:"supplier_email"`
	LineItems         types.PricedLineItems `json:"line_items"`
	Total             decimal.Decimal       `json:"total"`
	Status            enums.QuotationStatus `json:"status"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// QuotationList wraps paginated quotations plus the next page cursor.
type QuotationList struct {
	Quotations []QuotationDTO `json:"quotations"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// FinalOrderDTO is the transport shape for a final order.
type FinalOrderDTO struct {
	ID                uuid.UUID            `json:"id"`
	SupplierRequestID uuid.UUID            `json:"supplier_request_id"`
	QuotationID       uuid.UUID            `json:"quotation_id"`
	ClientID          uuid.UUID            `json:"client_id"`
	SupplierEmail     string               `json:"supplier_email"`
	LineItems         types.OrderLineItems `json:"line_items"`
	SupplierTotal     decimal.Decimal      `json:"supplier_total"`
	MarginTotal       decimal.Decimal      `json:"margin_total"`
	FinalTotal        decimal.Decimal      `json:"final_total"`
	CreatedAt         time.Time            `json:"created_at"`
}

// FinalOrderList wraps paginated final orders plus the next page cursor.
type FinalOrderList struct {
	Orders     []FinalOrderDTO `json:"orders"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// ListParams carries pagination for quotation and order listings.
type ListParams struct {
	pkgpagination.Params
}

func toQuotationDTO(m models.Quotation) QuotationDTO {
	total := decimal.Zero
	for _, item := range m.LineItems {
		total = total.Add(item.BaseTotal)
	}
	return QuotationDTO{
		ID:                m.ID,
		SupplierRequestID: m.SupplierRequestID,
		ClientID:          m.ClientID,
		SupplierEmail:     m.SupplierEmail,
		LineItems:         m.LineItems,
		Total:             total,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toFinalOrderDTO(m models.FinalOrder) FinalOrderDTO {
	return FinalOrderDTO{
		ID:                m.ID,
		SupplierRequestID: m.SupplierRequestID,
		QuotationID:       m.QuotationID,
		ClientID:          m.ClientID,
		SupplierEmail:     m.SupplierEmail,
		LineItems:         m.LineItems,
		SupplierTotal:     m.SupplierTotal,
		MarginTotal:       m.MarginTotal,
		FinalTotal:        m.FinalTotal,
		CreatedAt:         m.CreatedAt,
	}
}
