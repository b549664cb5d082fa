package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buildsetu/buildsetu-backend/internal/catalog"
	"github.com/buildsetu/buildsetu-backend/pkg/config"
	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

// Store is the Redis surface the cart needs.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

// Catalog validates cart entries against the live product list.
type Catalog interface {
	FindVariant(slug, variantName string) (*catalog.Product, *catalog.Variant, error)
}

// AddItemInput identifies the catalog selection being added to the cart.
type AddItemInput struct {
	ProductID     string `json:"product_id" validate:"required"`
	Variant       string `json:"variant" validate:"required"`
	Specification string `json:"specification" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
}

// Service keeps one cart per authenticated user in Redis.
type Service struct {
	store   Store
	catalog Catalog
	cfg     config.CartConfig
}

// NewService builds the cart service.
func NewService(store Store, cat Catalog, cfg config.CartConfig) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	return &Service{store: store, catalog: cat, cfg: cfg}, nil
}

// Get returns the cart contents, or an empty slice when no cart exists.
func (s *Service) Get(ctx context.Context, userID string) (types.LineItems, error) {
	raw, err := s.store.Get(ctx, s.store.CartKey(userID))
	if err != nil {
		if err == redis.Nil {
			return types.LineItems{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var items types.LineItems
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	return items, nil
}

// Add appends a validated selection. Adding the same product, variant and
// specification again accumulates quantity instead of duplicating the line.
func (s *Service) Add(ctx context.Context, userID string, input AddItemInput) (types.LineItems, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if strings.TrimSpace(input.Specification) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "specification is required")
	}

	product, variant, err := s.catalog.FindVariant(input.ProductID, input.Variant)
	if err != nil {
		return nil, err
	}
	if !variantHasSpecification(variant, input.Specification) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown specification for variant")
	}

	items, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == product.ID &&
			strings.EqualFold(items[i].Variant, variant.Name) &&
			strings.EqualFold(items[i].Specification, input.Specification) {
			items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, types.LineItem{
			ProductID:     product.ID,
			Title:         product.Title,
			Category:      product.Category,
			Variant:       variant.Name,
			Specification: input.Specification,
			Quantity:      input.Quantity,
			Image:         image,
		})
	}

	if err := s.save(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the line matching the product, variant and specification.
func (s *Service) Remove(ctx context.Context, userID string, productID, variant, specification string) (types.LineItems, error) {
	items, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.ProductID == productID &&
			strings.EqualFold(item.Variant, variant) &&
			strings.EqualFold(item.Specification, specification) {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	if len(kept) == 0 {
		if err := s.Clear(ctx, userID); err != nil {
			return nil, err
		}
		return types.LineItems{}, nil
	}

	if err := s.save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear drops the cart entirely. Called after a request submission succeeds.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Del(ctx, s.store.CartKey(userID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *Service) save(ctx context.Context, userID string, items types.LineItems) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.store.Set(ctx, s.store.CartKey(userID), payload, s.cfg.TTL); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func variantHasSpecification(variant *catalog.Variant, specification string) bool {
	for _, spec := range variant.Specifications {
		if strings.EqualFold(spec, specification) {
			return true
		}
	}
	return false
}
