package catalog

import (
	"strings"

	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

// Service exposes read access to the fixed product catalog.
type Service struct {
	products []Product
	bySlug   map[string]*Product
}

// NewService indexes the catalog for slug lookups.
func NewService() *Service {
	s := &Service{
		products: products,
		bySlug:   make(map[string]*Product, len(products)),
	}
	for i := range s.products {
		s.bySlug[s.products[i].Slug] = &s.products[i]
	}
	return s
}

// List returns catalog products, optionally filtered by category. An empty or
// "All" category returns everything.
func (s *Service) List(category string) []Product {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "All") {
		return s.products
	}

	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get loads a single product by its slug.
func (s *Service) Get(slug string) (*Product, error) {
	p, ok := s.bySlug[strings.TrimSpace(slug)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

// FindVariant reports whether the product exposes the named variant.
func (s *Service) FindVariant(slug, variantName string) (*Product, *Variant, error) {
	p, err := s.Get(slug)
	if err != nil {
		return nil, nil, err
	}
	for i := range p.Variants {
		if strings.EqualFold(p.Variants[i].Name, variantName) {
			return p, &p.Variants[i], nil
		}
	}
	return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product variant")
}
