package clients

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
)

// ContactDetails is the profile captured alongside a quote submission.
type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Repository exposes client-profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a clients repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindOrCreateByEmail loads the client matching the email, creating it when
// absent. Existing clients keep their stored contact fields; the only write on
// a match is linking the account when the profile was created anonymously.
func (r *Repository) FindOrCreateByEmail(ctx context.Context, userID *uuid.UUID, details ContactDetails) (*models.Client, error) {
	email := strings.ToLower(strings.TrimSpace(details.Email))

	var client models.Client
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error
	if err == nil {
		if client.UserID == nil && userID != nil {
			if err := r.db.WithContext(ctx).Model(&client).Update("user_id", *userID).Error; err != nil {
				return nil, err
			}
			client.UserID = userID
		}
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		UserID:  userID,
		Name:    details.Name,
		Email:   email,
		Phone:   details.Phone,
		Address: details.Address,
	}
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByID loads a client by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByUserID loads the client linked to an authenticated account.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByEmail loads a client by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}
