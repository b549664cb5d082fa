package requests

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
)

// Repository defines persistence operations for the request workflow tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateClientRequest(ctx context.Context, request *models.ClientRequest) (*models.ClientRequest, error)
	FindClientRequest(ctx context.Context, id uuid.UUID) (*models.ClientRequest, error)
	ListClientRequests(ctx context.Context, clientID uuid.UUID, limit int, cursor *pkgpagination.Cursor) ([]models.ClientRequest, error)
	ListPendingClientRequests(ctx context.Context, limit int, cursor *pkgpagination.Cursor) ([]pendingRequestRow, error)
	UpdateClientRequestStatus(ctx context.Context, id uuid.UUID, status enums.ClientRequestStatus, updates map[string]any) error

	CreateSupplierRequest(ctx context.Context, request *models.SupplierRequest) (*models.SupplierRequest, error)
	FindSupplierRequest(ctx context.Context, id uuid.UUID) (*models.SupplierRequest, error)
	ListOpenSupplierRequests(ctx context.Context, supplierEmail string, limit int, cursor *pkgpagination.Cursor) ([]models.SupplierRequest, error)
	ListPendingSupplierRequests(ctx context.Context, limit int, cursor *pkgpagination.Cursor) ([]models.SupplierRequest, error)

	CreateSupplierAction(ctx context.Context, action *models.SupplierAction) error
	HasSupplierAction(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error)
}
