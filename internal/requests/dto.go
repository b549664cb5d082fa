package requests

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// ContactInfo is the profile submitted with a quote request.
type ContactInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// SubmitRequest is the checkout payload. Line items come from the server-side
// cart, not the request body.
type SubmitRequest struct {
	Contact ContactInfo `json:"contact" validate:"required"`
}

// SubmitInput carries the authenticated identity plus the checkout payload.
type SubmitInput struct {
	UserID  uuid.UUID
	Contact ContactInfo
}

// ClientRequestDTO is the transport shape for a client request.
type ClientRequestDTO struct {
	ID         uuid.UUID                 `json:"id"`
	ClientID   uuid.UUID                 `json:"client_id"`
	LineItems  types.LineItems           `json:"line_items"`
	Status     enums.ClientRequestStatus `json:"status"`
	ApprovedAt *time.Time                `json:"approved_at,omitempty"`
	RejectedAt *time.Time                `json:"rejected_at,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

// PendingRequestDTO joins the request with the submitting client's profile
// for the admin review queue.
type PendingRequestDTO struct {
	ClientRequestDTO
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
}

// SupplierRequestDTO is the transport shape for a supplier request.
type SupplierRequestDTO struct {
	ID              uuid.UUID                   `json:"id"`
	ClientRequestID uuid.UUID                   `json:"client_request_id"`
	ClientID        uuid.UUID                   `json:"client_id"`
	LineItems       types.LineItems             `json:"line_items"`
	Status          enums.SupplierRequestStatus `json:"status"`
	AcceptedAt      *time.Time                  `json:"accepted_at,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

// ClientRequestList wraps the paginated requests plus the next page cursor.
type ClientRequestList struct {
	Requests   []ClientRequestDTO `json:"requests"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// PendingRequestList wraps the admin queue page plus the next cursor.
type PendingRequestList struct {
	Requests   []PendingRequestDTO `json:"requests"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

// SupplierRequestList wraps the paginated supplier requests plus the cursor.
type SupplierRequestList struct {
	Requests   []SupplierRequestDTO `json:"requests"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

// ListParams carries pagination for request listings.
type ListParams struct {
	pkgpagination.Params
}

func toClientRequestDTO(m models.ClientRequest) ClientRequestDTO {
	return ClientRequestDTO{
		ID:         m.ID,
		ClientID:   m.ClientID,
		LineItems:  m.LineItems,
		Status:     m.Status,
		ApprovedAt: m.ApprovedAt,
		RejectedAt: m.RejectedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toSupplierRequestDTO(m models.SupplierRequest) SupplierRequestDTO {
	return SupplierRequestDTO{
		ID:              m.ID,
		ClientRequestID: m.ClientRequestID,
		ClientID:        m.ClientID,
		LineItems:       m.LineItems,
		Status:          m.Status,
		AcceptedAt:      m.AcceptedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
