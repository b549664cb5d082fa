package requests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/internal/clients"
	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

func setupRequestsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := []string{
		`CREATE TABLE clients (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL,
  address TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE client_requests (
  id TEXT PRIMARY KEY,
  client_id TEXT NOT NULL,
  line_items TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  approved_at DATETIME,
  rejected_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE supplier_requests (
  id TEXT PRIMARY KEY,
  client_request_id TEXT NOT NULL UNIQUE,
  client_id TEXT NOT NULL,
  line_items TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  accepted_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE quotations (
  id TEXT PRIMARY KEY,
  supplier_request_id TEXT NOT NULL,
  client_id TEXT NOT NULL,
  supplier_email TEXT NOT NULL,
  line_items TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'under_review',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE supplier_actions (
  id TEXT PRIMARY KEY,
  supplier_request_id TEXT NOT NULL,
  supplier_email TEXT NOT NULL,
  action TEXT NOT NULL,
  created_at DATETIME
);`,
	}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedSupplierRequest(t *testing.T, db *gorm.DB, createdAt time.Time) *models.SupplierRequest {
	t.Helper()
	request := &models.SupplierRequest{
		ID:              uuid.New(),
		ClientRequestID: uuid.New(),
		ClientID:        uuid.New(),
		LineItems:       types.LineItems{{ProductID: "h-frame", Title: "H-Frame", Variant: "Standard", Specification: "2m", Quantity: 4}},
		Status:          enums.SupplierRequestStatusPending,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

func TestListOpenSupplierRequestsVisibility(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	open := seedSupplierRequest(t, db, base)
	declined := seedSupplierRequest(t, db, base.Add(time.Minute))
	quoted := seedSupplierRequest(t, db, base.Add(2*time.Minute))
	closed := seedSupplierRequest(t, db, base.Add(3*time.Minute))
	require.NoError(t, db.Model(&models.SupplierRequest{}).Where("id = ?", closed.ID).
		Update("status", enums.SupplierRequestStatusAccepted).Error)

	require.NoError(t, db.Create(&models.SupplierAction{
		ID:                uuid.New(),
		SupplierRequestID: declined.ID,
		SupplierEmail:     "steel@supplier.com",
		Action:            enums.SupplierActionRejected,
	}).Error)
	require.NoError(t, db.Create(&models.Quotation{
		ID:                uuid.New(),
		SupplierRequestID: quoted.ID,
		ClientID:          quoted.ClientID,
		SupplierEmail:     "steel@supplier.com",
		LineItems:         types.PricedLineItems{},
		Status:            enums.QuotationStatusUnderReview,
	}).Error)

	rows, err := repo.ListOpenSupplierRequests(ctx, "steel@supplier.com", 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, open.ID, rows[0].ID)

	// A different supplier still sees everything that is pending.
	rows, err = repo.ListOpenSupplierRequests(ctx, "other@supplier.com", 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestListPendingSupplierRequestsExcludesAccepted(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	older := seedSupplierRequest(t, db, base)
	newer := seedSupplierRequest(t, db, base.Add(time.Minute))
	accepted := seedSupplierRequest(t, db, base.Add(2*time.Minute))
	require.NoError(t, db.Model(&models.SupplierRequest{}).Where("id = ?", accepted.ID).
		Update("status", enums.SupplierRequestStatusAccepted).Error)

	// Per-supplier declines must not hide anything from the admin board.
	require.NoError(t, db.Create(&models.SupplierAction{
		ID:                uuid.New(),
		SupplierRequestID: older.ID,
		SupplierEmail:     "steel@supplier.com",
		Action:            enums.SupplierActionRejected,
	}).Error)

	rows, err := repo.ListPendingSupplierRequests(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)
}

func TestHasSupplierActionNormalizesEmail(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	request := seedSupplierRequest(t, db, time.Now().UTC())
	require.NoError(t, repo.CreateSupplierAction(ctx, &models.SupplierAction{
		ID:                uuid.New(),
		SupplierRequestID: request.ID,
		SupplierEmail:     "steel@supplier.com",
		Action:            enums.SupplierActionRejected,
	}))

	found, err := repo.HasSupplierAction(ctx, request.ID, "  Steel@Supplier.COM ")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.HasSupplierAction(ctx, request.ID, "other@supplier.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListPendingClientRequestsJoinsClient(t *testing.T) {
	db := setupRequestsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	clientRepo := clients.NewRepository(db)
	client := &models.Client{
		ID:      uuid.New(),
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	}
	require.NoError(t, db.Create(client).Error)

	request := &models.ClientRequest{
		ID:        uuid.New(),
		ClientID:  client.ID,
		LineItems: types.LineItems{{ProductID: "h-frame", Title: "H-Frame", Variant: "Standard", Specification: "2m", Quantity: 4}},
		Status:    enums.ClientRequestStatusPending,
	}
	require.NoError(t, db.Create(request).Error)

	resolved := &models.ClientRequest{
		ID:        uuid.New(),
		ClientID:  client.ID,
		LineItems: types.LineItems{},
		Status:    enums.ClientRequestStatusRejected,
	}
	require.NoError(t, db.Create(resolved).Error)

	rows, err := repo.ListPendingClientRequests(ctx, 10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, request.ID, rows[0].ID)
	assert.Equal(t, "Ravi Sharma", rows[0].ClientName)
	assert.Equal(t, "ravi@example.com", rows[0].ClientEmail)

	// Sanity check the shared lookup path used by submissions.
	found, err := clientRepo.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
}
