package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/internal/clients"
	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
	"github.com/buildsetu/buildsetu-backend/pkg/logger"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartReader interface {
	Get(ctx context.Context, userID string) (types.LineItems, error)
	Clear(ctx context.Context, userID string) error
}

type clientRepository interface {
	FindOrCreateByEmail(ctx context.Context, userID *uuid.UUID, details clients.ContactDetails) (*models.Client, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
}

// Service defines the request workflow operations.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*ClientRequestDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID, accountEmail string, params ListParams) (*ClientRequestList, error)
	PendingQueue(ctx context.Context, params ListParams) (*PendingRequestList, error)
	Approve(ctx context.Context, requestID uuid.UUID) (*SupplierRequestDTO, error)
	Reject(ctx context.Context, requestID uuid.UUID) (*ClientRequestDTO, error)
	OpenForSupplier(ctx context.Context, supplierEmail string, params ListParams) (*SupplierRequestList, error)
	SupplierBoard(ctx context.Context, params ListParams) (*SupplierRequestList, error)
	Decline(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) error
}

type service struct {
	repo    Repository
	clients clientRepository
	cart    cartReader
	tx      txRunner
	logg    *logger.Logger
}

// ServiceParams bundles the dependencies required to build a requests service.
type ServiceParams struct {
	Repo       Repository
	ClientRepo clientRepository
	Cart       cartReader
	Tx         txRunner
	Logger     *logger.Logger
}

// NewService constructs the request workflow service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("requests repository is required")
	}
	if params.ClientRepo == nil {
		return nil, fmt.Errorf("clients repository is required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart reader is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		repo:    params.Repo,
		clients: params.ClientRepo,
		cart:    params.Cart,
		tx:      params.Tx,
		logg:    params.Logger,
	}, nil
}

// Submit turns the user's cart into a pending client request. The client
// profile is found or created by email, so repeat submissions reuse the row.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*ClientRequestDTO, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if err := validateContact(input.Contact); err != nil {
		return nil, err
	}

	items, err := s.cart.Get(ctx, input.UserID.String())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "line item quantity must be at least 1")
		}
	}

	var created *models.ClientRequest
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		clientRepo := clients.NewRepository(tx)
		userID := input.UserID
		client, err := clientRepo.FindOrCreateByEmail(ctx, &userID, clients.ContactDetails{
			Name:    input.Contact.Name,
			Email:   input.Contact.Email,
			Phone:   input.Contact.Phone,
			Address: input.Contact.Address,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve client")
		}

		request, err := s.repo.WithTx(tx).CreateClientRequest(ctx, &models.ClientRequest{
			ClientID:  client.ID,
			LineItems: items,
			Status:    enums.ClientRequestStatusPending,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create client request")
		}
		created = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The request is committed; a stale cart only risks a duplicate submission.
	if err := s.cart.Clear(ctx, input.UserID.String()); err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("clearing cart after submission: %v", err))
	}

	dto := toClientRequestDTO(*created)
	return &dto, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID, accountEmail string, params ListParams) (*ClientRequestList, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	client, err := s.clients.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Fall back to the account email: requests submitted before the
			// account link was recorded still belong to this user.
			client, err = s.clients.FindByEmail(ctx, accountEmail)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ClientRequestList{Requests: []ClientRequestDTO{}}, nil
			}
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve client")
		}
	}

	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListClientRequests(ctx, client.ID, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list client requests")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &ClientRequestList{
		Requests:   make([]ClientRequestDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Requests[i] = toClientRequestDTO(row)
	}
	return list, nil
}

func (s *service) PendingQueue(ctx context.Context, params ListParams) (*PendingRequestList, error) {
	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListPendingClientRequests(ctx, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending requests")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &PendingRequestList{
		Requests:   make([]PendingRequestDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Requests[i] = PendingRequestDTO{
			ClientRequestDTO: toClientRequestDTO(row.ClientRequest),
			ClientName:       row.ClientName,
			ClientEmail:      row.ClientEmail,
			ClientPhone:      row.ClientPhone,
		}
	}
	return list, nil
}

// Approve moves a pending request to approved and opens it to suppliers. Both
// writes land in one transaction so a request is never approved without its
// supplier-facing copy.
func (s *service) Approve(ctx context.Context, requestID uuid.UUID) (*SupplierRequestDTO, error) {
	if requestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request id required")
	}

	var spawned *models.SupplierRequest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		request, err := repo.FindClientRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load client request")
		}
		if request.Status != enums.ClientRequestStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "request already resolved")
		}

		now := time.Now().UTC()
		err = repo.UpdateClientRequestStatus(ctx, requestID, enums.ClientRequestStatusApproved, map[string]any{
			"approved_at": now,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve client request")
		}

		spawned, err = repo.CreateSupplierRequest(ctx, &models.SupplierRequest{
			ClientRequestID: request.ID,
			ClientID:        request.ClientID,
			LineItems:       request.LineItems,
			Status:          enums.SupplierRequestStatusPending,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier request")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toSupplierRequestDTO(*spawned)
	return &dto, nil
}

// Reject is terminal: a rejected request never reaches suppliers and cannot
// be reopened.
func (s *service) Reject(ctx context.Context, requestID uuid.UUID) (*ClientRequestDTO, error) {
	if requestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request id required")
	}

	var rejected *models.ClientRequest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		request, err := repo.FindClientRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load client request")
		}
		if request.Status != enums.ClientRequestStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "request already resolved")
		}

		now := time.Now().UTC()
		err = repo.UpdateClientRequestStatus(ctx, requestID, enums.ClientRequestStatusRejected, map[string]any{
			"rejected_at": now,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reject client request")
		}

		request.Status = enums.ClientRequestStatusRejected
		request.RejectedAt = &now
		rejected = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toClientRequestDTO(*rejected)
	return &dto, nil
}

func (s *service) OpenForSupplier(ctx context.Context, supplierEmail string, params ListParams) (*SupplierRequestList, error) {
	email := strings.ToLower(strings.TrimSpace(supplierEmail))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "supplier identity missing")
	}

	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListOpenSupplierRequests(ctx, email, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list open supplier requests")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &SupplierRequestList{
		Requests:   make([]SupplierRequestDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Requests[i] = toSupplierRequestDTO(row)
	}
	return list, nil
}

// SupplierBoard lists the supplier requests still open to quoting for the
// admin review board. Accepted requests fall off; their outcome lives in the
// final-order views.
func (s *service) SupplierBoard(ctx context.Context, params ListParams) (*SupplierRequestList, error) {
	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListPendingSupplierRequests(ctx, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list supplier requests")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &SupplierRequestList{
		Requests:   make([]SupplierRequestDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Requests[i] = toSupplierRequestDTO(row)
	}
	return list, nil
}

// Decline hides the request from this supplier only. Other suppliers keep
// seeing it, and the request itself stays pending.
func (s *service) Decline(ctx context.Context, supplierRequestID uuid.UUID, supplierEmail string) error {
	email := strings.ToLower(strings.TrimSpace(supplierEmail))
	if email == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "supplier identity missing")
	}
	if supplierRequestID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "supplier request id required")
	}

	request, err := s.repo.FindSupplierRequest(ctx, supplierRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "supplier request not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier request")
	}
	if request.Status != enums.SupplierRequestStatusPending {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "supplier request already closed")
	}

	declined, err := s.repo.HasSupplierAction(ctx, supplierRequestID, email)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check supplier action")
	}
	if declined {
		// Already hidden for this supplier; repeating the decline changes nothing.
		return nil
	}

	err = s.repo.CreateSupplierAction(ctx, &models.SupplierAction{
		SupplierRequestID: supplierRequestID,
		SupplierEmail:     email,
		Action:            enums.SupplierActionRejected,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record supplier action")
	}
	return nil
}

func validateContact(contact ContactInfo) error {
	if strings.TrimSpace(contact.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "contact name is required")
	}
	if strings.TrimSpace(contact.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "contact email is required")
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "contact phone is required")
	}
	if strings.TrimSpace(contact.Address) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "contact address is required")
	}
	return nil
}

func parsePage(params ListParams) (int, *pkgpagination.Cursor, error) {
	limit := pkgpagination.NormalizeLimit(params.Limit)
	if params.Cursor == "" {
		return limit, nil, nil
	}
	cursor, err := pkgpagination.ParseCursor(params.Cursor)
	if err != nil {
		return 0, nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	return limit, cursor, nil
}
