package clients

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupClientsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE clients (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT NOT NULL,
  address TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func TestFindOrCreateByEmailCreatesWithNormalizedEmail(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	client, err := repo.FindOrCreateByEmail(ctx, nil, ContactDetails{
		Name:    "Ravi Sharma",
		Email:   "  Ravi@Example.com ",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", client.Email)
	assert.Nil(t, client.UserID)

	found, err := repo.FindByEmail(ctx, "RAVI@example.com")
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)
}

func TestFindOrCreateByEmailKeepsStoredContactDetails(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateByEmail(ctx, nil, ContactDetails{
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	})
	require.NoError(t, err)

	again, err := repo.FindOrCreateByEmail(ctx, nil, ContactDetails{
		Name:    "R. Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 00000 00000",
		Address: "Somewhere else entirely",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, again.ID)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Sharma", stored.Name)
	assert.Equal(t, "+91 98765 43210", stored.Phone)
	assert.Equal(t, "Plot 12, MIDC, Pune", stored.Address)
}

func TestFindOrCreateByEmailBackfillsUserID(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	anon, err := repo.FindOrCreateByEmail(ctx, nil, ContactDetails{
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	})
	require.NoError(t, err)
	require.Nil(t, anon.UserID)

	uid := uuid.New()
	linked, err := repo.FindOrCreateByEmail(ctx, &uid, ContactDetails{
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	})
	require.NoError(t, err)
	require.NotNil(t, linked.UserID)
	assert.Equal(t, uid, *linked.UserID)

	// An established link is never rewritten by later submissions.
	other := uuid.New()
	relinked, err := repo.FindOrCreateByEmail(ctx, &other, ContactDetails{
		Name:    "Ravi Sharma",
		Email:   "ravi@example.com",
		Phone:   "+91 98765 43210",
		Address: "Plot 12, MIDC, Pune",
	})
	require.NoError(t, err)
	require.NotNil(t, relinked.UserID)
	assert.Equal(t, uid, *relinked.UserID)
}
