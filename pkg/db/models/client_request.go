package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// ClientRequest is a client's submitted bundle of line items awaiting admin
// review. Approval spawns a SupplierRequest; rejection is terminal.
type ClientRequest struct {
	ID         uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID   uuid.UUID                 `gorm:"column:client_id;type:uuid;not null;index"`
	LineItems  types.LineItems           `gorm:"column:line_items;type:jsonb;serializer:json;not null"`
	Status     enums.ClientRequestStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	ApprovedAt *time.Time                `gorm:"column:approved_at"`
	RejectedAt *time.Time                `gorm:"column:rejected_at"`
	CreatedAt  time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
