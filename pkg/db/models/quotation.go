package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// Quotation is one supplier's priced response to a supplier request. The
// supplier email doubles as the supplier identity; there is no supplier
// entity beyond the account itself.
type Quotation struct {
	ID                uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierRequestID uuid.UUID             `gorm:"column:supplier_request_id;type:uuid;not null;index"`
	ClientID          uuid.UUID             `gorm:"column:client_id;type:uuid;not null"`
	SupplierEmail     string                `gorm:"column:supplier_email;not null"`
	LineItems         types.PricedLineItems `gorm:"column:line_items;type:jsonb;serializer:json;not null"`
	Status            enums.QuotationStatus `gorm:"column:status;type:text;not null;default:'under_review'"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
