package quotations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
)

// Repository defines persistence operations for quotations and final orders.
// Accepting a quotation also closes its supplier request, so that write lives
// here as well.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateQuotation(ctx context.Context, quotation *models.Quotation) (*models.Quotation, error)
	FindQuotation(ctx context.Context, id uuid.UUID) (*models.Quotation, error)
	ListBySupplier(ctx context.Context, supplierEmail string, limit int, cursor *pkgpagination.Cursor) ([]models.Quotation, error)
	ListForSupplierRequest(ctx context.Context, supplierRequestID uuid.UUID) ([]models.Quotation, error)
	HasQuotationFrom(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error)
	HasDeclined(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) (bool, error)
	UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enums.QuotationStatus) error
	MarkSiblingsLost(ctx context.Context, supplierRequestID, acceptedID uuid.UUID) error

	FindSupplierRequest(ctx context.Context, id uuid.UUID) (*models.SupplierRequest, error)
	CloseSupplierRequest(ctx context.Context, id uuid.UUID, at time.Time) error

	CreateFinalOrder(ctx context.Context, order *models.FinalOrder) (*models.FinalOrder, error)
	FindFinalOrder(ctx context.Context, id uuid.UUID) (*models.FinalOrder, error)
	ListFinalOrders(ctx context.Context, clientID *uuid.UUID, limit int, cursor *pkgpagination.Cursor) ([]models.FinalOrder, error)
}
