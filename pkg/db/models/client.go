package models

import (
	"time"

	"github.com/google/uuid"
)

// Client holds the contact profile attached to client requests. Lookup is by
// email, so a client created during checkout is reused by later submissions.
type Client struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    *uuid.UUID `gorm:"column:user_id;type:uuid"`
	Name      string     `gorm:"column:name;not null"`
	Email     string     `gorm:"column:email;not null;uniqueIndex"`
	Phone     string     `gorm:"column:phone;not null"`
	Address   string     `gorm:"column:address;not null"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
