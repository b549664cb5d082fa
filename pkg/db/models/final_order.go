package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// FinalOrder is the margined result of the admin accepting one quotation.
// Rows are immutable once written; there is no update or delete path.
type FinalOrder struct {
	ID                uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierRequestID uuid.UUID            `gorm:"column:supplier_request_id;type:uuid;not null;uniqueIndex"`
	QuotationID       uuid.UUID            `gorm:"column:quotation_id;type:uuid;not null"`
	ClientID          uuid.UUID            `gorm:"column:client_id;type:uuid;not null;index"`
	SupplierEmail     string               `gorm:"column:supplier_email;not null"`
	LineItems         types.OrderLineItems `gorm:"column:line_items;type:jsonb;serializer:json;not null"`
	SupplierTotal     decimal.Decimal      `gorm:"column:supplier_total;type:numeric(14,2);not null"`
	MarginTotal       decimal.Decimal      `gorm:"column:margin_total;type:numeric(14,2);not null"`
	FinalTotal        decimal.Decimal      `gorm:"column:final_total;type:numeric(14,2);not null"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime"`
}
