package quotations

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a quotations repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateQuotation(ctx context.Context, quotation *models.Quotation) (*models.Quotation, error) {
	if err := r.db.WithContext(ctx).Create(quotation).Error; err != nil {
		return nil, err
	}
	return quotation, nil
}

func (r *repository) FindQuotation(ctx context.Context, id uuid.UUID) (*models.Quotation, error) {
	var quotation models.Quotation
	if err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *repository) ListBySupplier(ctx context.Context, supplierEmail string, limit int, cursor *pkgpagination.Cursor) ([]models.Quotation, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("supplier_email = ?", strings.ToLower(strings.TrimSpace(supplierEmail)))

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Quotation
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListForSupplierRequest(ctx context.Context, supplierRequestID uuid.UUID) ([]models.Quotation, error) {
	var rows []models.Quotation
	err := r.db.WithContext(ctx).
		Where("supplier_request_id = ?", supplierRequestID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) HasQuotationFrom(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("supplier_request_id = ? AND supplier_email = ?", supplierRequestID, strings.ToLower(strings.TrimSpace(supplierEmail))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasDeclined reports whether the supplier has recorded a decline for the
// request. Declined suppliers cannot quote afterwards.
func (r *repository) HasDeclined(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SupplierAction{}).
		Where("supplier_request_id = ? AND supplier_email = ? AND action = ?",
			supplierRequestID, strings.ToLower(strings.TrimSpace(supplierEmail)), enums.SupplierActionRejected).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enums.QuotationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}

// MarkSiblingsLost closes every other quotation on the same supplier request.
func (r *repository) MarkSiblingsLost(ctx context.Context, supplierRequestID, acceptedID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Quotation{}).
		Where("supplier_request_id = ? AND id <> ?", supplierRequestID, acceptedID).
		Updates(map[string]any{"status": enums.QuotationStatusLost, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) FindSupplierRequest(ctx context.Context, id uuid.UUID) (*models.SupplierRequest, error) {
	var request models.SupplierRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repository) CloseSupplierRequest(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.SupplierRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      enums.SupplierRequestStatusAccepted,
			"accepted_at": at,
			"updated_at":  at,
		}).Error
}

func (r *repository) CreateFinalOrder(ctx context.Context, order *models.FinalOrder) (*models.FinalOrder, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindFinalOrder(ctx context.Context, id uuid.UUID) (*models.FinalOrder, error) {
	var order models.FinalOrder
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListFinalOrders lists orders newest first, optionally scoped to one client.
func (r *repository) ListFinalOrders(ctx context.Context, clientID *uuid.UUID, limit int, cursor *pkgpagination.Cursor) ([]models.FinalOrder, error) {
	query := r.db.WithContext(ctx).Model(&models.FinalOrder{})
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.FinalOrder
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
