package requests

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

// pendingRequestRow joins a pending request with its client profile.
type pendingRequestRow struct {
	models.ClientRequest
	ClientName  string
	ClientEmail string
	ClientPhone string
}

// NewRepository builds a requests repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateClientRequest(ctx context.Context, request *models.ClientRequest) (*models.ClientRequest, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *repository) FindClientRequest(ctx context.Context, id uuid.UUID) (*models.ClientRequest, error) {
	var request models.ClientRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repository) ListClientRequests(ctx context.Context, clientID uuid.UUID, limit int, cursor *pkgpagination.Cursor) ([]models.ClientRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ClientRequest{}).
		Where("client_id = ?", clientID)

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.ClientRequest
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListPendingClientRequests(ctx context.Context, limit int, cursor *pkgpagination.Cursor) ([]pendingRequestRow, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ClientRequest{}).
		Select("client_requests.*, clients.name AS client_name, clients.email AS client_email, clients.phone AS client_phone").
		Joins("JOIN clients ON clients.id = client_requests.client_id").
		Where("client_requests.status = ?", enums.ClientRequestStatusPending)

	if cursor != nil {
		query = query.Where("(client_requests.created_at < ?) OR (client_requests.created_at = ? AND client_requests.id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []pendingRequestRow
	err := query.Order("client_requests.created_at DESC").Order("client_requests.id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) UpdateClientRequestStatus(ctx context.Context, id uuid.UUID, status enums.ClientRequestStatus, updates map[string]any) error {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = status
	updates["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&models.ClientRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) CreateSupplierRequest(ctx context.Context, request *models.SupplierRequest) (*models.SupplierRequest, error) {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *repository) FindSupplierRequest(ctx context.Context, id uuid.UUID) (*models.SupplierRequest, error) {
	var request models.SupplierRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListOpenSupplierRequests returns pending supplier requests the given
// supplier has neither declined nor already quoted.
func (r *repository) ListOpenSupplierRequests(ctx context.Context, supplierEmail string, limit int, cursor *pkgpagination.Cursor) ([]models.SupplierRequest, error) {
	email := strings.ToLower(strings.TrimSpace(supplierEmail))

	query := r.db.WithContext(ctx).
		Model(&models.SupplierRequest{}).
		Where("status = ?", enums.SupplierRequestStatusPending).
		Where("id NOT IN (?)", r.db.
			Model(&models.SupplierAction{}).
			Select("supplier_request_id").
			Where("supplier_email = ?", email)).
		Where("id NOT IN (?)", r.db.
			Model(&models.Quotation{}).
			Select("supplier_request_id").
			Where("supplier_email = ?", email))

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.SupplierRequest
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPendingSupplierRequests returns every supplier request still open to
// quoting, regardless of supplier. Backs the admin review board.
func (r *repository) ListPendingSupplierRequests(ctx context.Context, limit int, cursor *pkgpagination.Cursor) ([]models.SupplierRequest, error) {
	query := r.db.WithContext(ctx).
		Model(&models.SupplierRequest{}).
		Where("status = ?", enums.SupplierRequestStatusPending)

	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.SupplierRequest
	err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateSupplierAction(ctx context.Context, action *models.SupplierAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *repository) HasSupplierAction(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SupplierAction{}).
		Where("supplier_request_id = ? AND supplier_email = ?", supplierRequestID, strings.ToLower(strings.TrimSpace(supplierEmail))).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
