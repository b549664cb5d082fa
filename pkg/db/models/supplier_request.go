package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// SupplierRequest is an approved client request opened to all suppliers for
// pricing. It carries its own copy of the line items.
type SupplierRequest struct {
	ID              uuid.UUID                   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClientRequestID uuid.UUID                   `gorm:"column:client_request_id;type:uuid;not null;uniqueIndex"`
	ClientID        uuid.UUID                   `gorm:"column:client_id;type:uuid;not null;index"`
	LineItems       types.LineItems             `gorm:"column:line_items;type:jsonb;serializer:json;not null"`
	Status          enums.SupplierRequestStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	AcceptedAt      *time.Time                  `gorm:"column:accepted_at"`
	CreatedAt       time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}
