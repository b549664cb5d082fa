package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/pkg/enums"
)

// SupplierAction records a supplier explicitly declining a supplier request.
// Append-only; its only effect is hiding the request from that supplier.
type SupplierAction struct {
	ID                uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplierRequestID uuid.UUID                `gorm:"column:supplier_request_id;type:uuid;not null;index"`
	SupplierEmail     string                   `gorm:"column:supplier_email;not null"`
	Action            enums.SupplierActionType `gorm:"column:action;type:text;not null"`
	CreatedAt         time.Time                `gorm:"column:created_at;autoCreateTime"`
}
