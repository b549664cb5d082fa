package quotations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/buildsetu/buildsetu-backend/pkg/db/models"
	"github.com/buildsetu/buildsetu-backend/pkg/enums"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
	pkgpagination "github.com/buildsetu/buildsetu-backend/pkg/pagination"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type clientResolver interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
}

// Service defines quotation and final order operations.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*QuotationDTO, error)
	ListBySupplier(ctx context.Context, supplierEmail string, params ListParams) (*QuotationList, error)
	ListForRequest(ctx context.Context, supplierRequestID uuid.UUID) ([]QuotationDTO, error)
	Accept(ctx context.Context, input AcceptInput) (*FinalOrderDTO, error)
	GetFinalOrder(ctx context.Context, id uuid.UUID) (*FinalOrderDTO, error)
	ListFinalOrders(ctx context.Context, params ListParams) (*FinalOrderList, error)
	ListFinalOrdersForClient(ctx context.Context, userID uuid.UUID, accountEmail string, params ListParams) (*FinalOrderList, error)
}

type service struct {
	repo    Repository
	clients clientResolver
	tx      txRunner
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo       Repository
	ClientRepo clientResolver
	Tx         txRunner
}

// NewService constructs the quotations service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("quotations repository is required")
	}
	if params.ClientRepo == nil {
		return nil, fmt.Errorf("clients repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{
		repo:    params.Repo,
		clients: params.ClientRepo,
		tx:      params.Tx,
	}, nil
}

// Submit records a supplier's priced response. Every line on the request must
// be priced exactly once, and a supplier gets one quotation per request.
func (s *service) Submit(ctx context.Context, input SubmitInput) (*QuotationDTO, error) {
	email := strings.ToLower(strings.TrimSpace(input.SupplierEmail))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "supplier identity missing")
	}
	if input.Request.SupplierRequestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier request id required")
	}
	if len(input.Request.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one priced item is required")
	}

	request, err := s.repo.FindSupplierRequest(ctx, input.Request.SupplierRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier request")
	}
	if request.Status != enums.SupplierRequestStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "supplier request already closed")
	}

	declined, err := s.repo.HasDeclined(ctx, request.ID, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check supplier action")
	}
	if declined {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "request was declined by this supplier")
	}

	quoted, err := s.repo.HasQuotationFrom(ctx, request.ID, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing quotation")
	}
	if quoted {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "quotation already submitted for this request")
	}

	priced, err := priceLineItems(request.LineItems, input.Request.Items)
	if err != nil {
		return nil, err
	}

	quotation, err := s.repo.CreateQuotation(ctx, &models.Quotation{
		SupplierRequestID: request.ID,
		ClientID:          request.ClientID,
		SupplierEmail:     email,
		LineItems:         priced,
		Status:            enums.QuotationStatusUnderReview,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create quotation")
	}

	dto := toQuotationDTO(*quotation)
	return &dto, nil
}

func (s *service) ListBySupplier(ctx context.Context, supplierEmail string, params ListParams) (*QuotationList, error) {
	email := strings.ToLower(strings.TrimSpace(supplierEmail))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "supplier identity missing")
	}

	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListBySupplier(ctx, email, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list quotations")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &QuotationList{
		Quotations: make([]QuotationDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Quotations[i] = toQuotationDTO(row)
	}
	return list, nil
}

func (s *service) ListForRequest(ctx context.Context, supplierRequestID uuid.UUID) ([]QuotationDTO, error) {
	if supplierRequestID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier request id required")
	}

	rows, err := s.repo.ListForSupplierRequest(ctx, supplierRequestID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list request quotations")
	}

	dtos := make([]QuotationDTO, len(rows))
	for i, row := range rows {
		dtos[i] = toQuotationDTO(row)
	}
	return dtos, nil
}

// Accept picks the winning quotation, applies the admin margins and writes the
// final order. The winner, the losing siblings and the supplier request all
// settle in one transaction, so a request can never end up with two winners.
func (s *service) Accept(ctx context.Context, input AcceptInput) (*FinalOrderDTO, error) {
	if input.QuotationID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quotation id required")
	}
	if len(input.Margins) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "margins are required")
	}
	for _, margin := range input.Margins {
		if margin.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "margins cannot be negative")
		}
	}

	var order *models.FinalOrder
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		quotation, err := repo.FindQuotation(ctx, input.QuotationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "quotation not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quotation")
		}
		if quotation.Status != enums.QuotationStatusUnderReview {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "quotation already resolved")
		}
		if len(input.Margins) != len(quotation.LineItems) {
			return pkgerrors.New(pkgerrors.CodeValidation, "margins must match quotation line items")
		}

		request, err := repo.FindSupplierRequest(ctx, quotation.SupplierRequestID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier request")
		}
		if request.Status != enums.SupplierRequestStatusPending {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "supplier request already closed")
		}

		orderItems := make(types.OrderLineItems, len(quotation.LineItems))
		supplierTotal := decimal.Zero
		marginTotal := decimal.Zero
		for i, item := range quotation.LineItems {
			finalTotal := item.BaseTotal.Add(input.Margins[i])
			orderItems[i] = types.OrderLineItem{
				PricedLineItem: item,
				Margin:         input.Margins[i],
				FinalTotal:     finalTotal,
			}
			supplierTotal = supplierTotal.Add(item.BaseTotal)
			marginTotal = marginTotal.Add(input.Margins[i])
		}

		now := time.Now().UTC()

		order, err = repo.CreateFinalOrder(ctx, &models.FinalOrder{
			SupplierRequestID: request.ID,
			QuotationID:       quotation.ID,
			ClientID:          quotation.ClientID,
			SupplierEmail:     quotation.SupplierEmail,
			LineItems:         orderItems,
			SupplierTotal:     supplierTotal,
			MarginTotal:       marginTotal,
			FinalTotal:        supplierTotal.Add(marginTotal),
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create final order")
		}

		if err := repo.UpdateQuotationStatus(ctx, quotation.ID, enums.QuotationStatusAccepted); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "accept quotation")
		}
		if err := repo.MarkSiblingsLost(ctx, request.ID, quotation.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark losing quotations")
		}
		if err := repo.CloseSupplierRequest(ctx, request.ID, now); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close supplier request")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toFinalOrderDTO(*order)
	return &dto, nil
}

func (s *service) GetFinalOrder(ctx context.Context, id uuid.UUID) (*FinalOrderDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	order, err := s.repo.FindFinalOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load final order")
	}

	dto := toFinalOrderDTO(*order)
	return &dto, nil
}

func (s *service) ListFinalOrders(ctx context.Context, params ListParams) (*FinalOrderList, error) {
	return s.listFinalOrders(ctx, nil, params)
}

func (s *service) ListFinalOrdersForClient(ctx context.Context, userID uuid.UUID, accountEmail string, params ListParams) (*FinalOrderList, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	client, err := s.clients.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			client, err = s.clients.FindByEmail(ctx, accountEmail)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &FinalOrderList{Orders: []FinalOrderDTO{}}, nil
			}
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve client")
		}
	}

	return s.listFinalOrders(ctx, &client.ID, params)
}

func (s *service) listFinalOrders(ctx context.Context, clientID *uuid.UUID, params ListParams) (*FinalOrderList, error) {
	limit, cursor, err := parsePage(params)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListFinalOrders(ctx, clientID, pkgpagination.LimitWithBuffer(params.Limit), cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list final orders")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	list := &FinalOrderList{
		Orders:     make([]FinalOrderDTO, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		list.Orders[i] = toFinalOrderDTO(row)
	}
	return list, nil
}

// priceLineItems matches the supplier's priced items against the request lines
// by product, variant and specification. Every line must be priced exactly
// once with a positive unit price.
func priceLineItems(requested types.LineItems, inputs []QuoteItemInput) (types.PricedLineItems, error) {
	type lineKey struct {
		product, variant, spec string
	}
	keyOf := func(product, variant, spec string) lineKey {
		return lineKey{
			product: strings.TrimSpace(product),
			variant: strings.ToLower(strings.TrimSpace(variant)),
			spec:    strings.ToLower(strings.TrimSpace(spec)),
		}
	}

	prices := make(map[lineKey]decimal.Decimal, len(inputs))
	for _, input := range inputs {
		if !input.UnitPrice.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must be positive")
		}
		key := keyOf(input.ProductID, input.Variant, input.Specification)
		if _, exists := prices[key]; exists {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "duplicate priced item")
		}
		prices[key] = input.UnitPrice
	}

	priced := make(types.PricedLineItems, len(requested))
	for i, item := range requested {
		key := keyOf(item.ProductID, item.Variant, item.Specification)
		unitPrice, ok := prices[key]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("missing price for %s", item.Title))
		}
		delete(prices, key)
		priced[i] = types.PricedLineItem{
			LineItem:  item,
			UnitPrice: unitPrice,
			BaseTotal: unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}
	if len(prices) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "priced items do not match the request")
	}
	return priced, nil
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
