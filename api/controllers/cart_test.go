package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buildsetu/buildsetu-backend/api/middleware"
	"github.com/buildsetu/buildsetu-backend/internal/cart"
	"github.com/buildsetu/buildsetu-backend/internal/catalog"
	"github.com/buildsetu/buildsetu-backend/pkg/config"
	"github.com/buildsetu/buildsetu-backend/pkg/types"
)

type memCartStore struct {
	data map[string]string
}

func newMemCartStore() *memCartStore {
	return &memCartStore{data: map[string]string{}}
}

func (s *memCartStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	}
	return nil
}

func (s *memCartStore) Get(ctx context.Context, key string) (string, error) {
	raw, ok := s.data[key]
	if !ok {
		return "", redis.Nil
	}
	return raw, nil
}

func (s *memCartStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

func (s *memCartStore) CartKey(userID string) string {
	return "bs:cart:" + userID
}

type fixedCatalog struct{}

func (fixedCatalog) FindVariant(slug, variantName string) (*catalog.Product, *catalog.Variant, error) {
	product := &catalog.Product{
		ID:       slug,
		Slug:     slug,
		Title:    "TMT Bar",
		Category: "steel",
		Images:   []string{"https://cdn.example.com/tmt.jpg"},
	}
	variant := &catalog.Variant{
		Name:           variantName,
		Specifications: []string{"8mm", "12mm"},
	}
	return product, variant, nil
}

func newCartService(t *testing.T, store cart.Store) *cart.Service {
	t.Helper()
	svc, err := cart.NewService(store, fixedCatalog{}, config.CartConfig{TTL: time.Hour})
	if err != nil {
		t.Fatalf("new cart service: %v", err)
	}
	return svc
}

func cartRequest(method, target string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func decodeCartItems(t *testing.T, body *bytes.Buffer) types.LineItems {
	t.Helper()
	var envelope struct {
		Data struct {
			Items types.LineItems `json:"items"`
		} `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data.Items
}

func TestCartGetEmptyReturnsEmptyList(t *testing.T) {
	svc := newCartService(t, newMemCartStore())
	handler := CartGet(svc, nil)

	w := httptest.NewRecorder()
	handler(w, cartRequest(http.MethodGet, "/api/v1/cart/", nil, "user-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if items := decodeCartItems(t, w.Body); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestCartAddItemMergesDuplicateLines(t *testing.T) {
	svc := newCartService(t, newMemCartStore())
	handler := CartAddItem(svc, nil)

	body := []byte(`{"product_id":"tmt-bar","variant":"Fe500D","specification":"12mm","quantity":5}`)

	w := httptest.NewRecorder()
	handler(w, cartRequest(http.MethodPost, "/api/v1/cart/items", body, "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	handler(w, cartRequest(http.MethodPost, "/api/v1/cart/items", body, "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on second add, got %d: %s", w.Code, w.Body.String())
	}

	items := decodeCartItems(t, w.Body)
	if len(items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(items))
	}
	if items[0].Quantity != 10 {
		t.Fatalf("expected quantity 10, got %d", items[0].Quantity)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	svc := newCartService(t, newMemCartStore())
	handler := CartAddItem(svc, nil)

	body := []byte(`{"product_id":"tmt-bar","variant":"Fe500D","specification":"12mm","quantity":0}`)

	w := httptest.NewRecorder()
	handler(w, cartRequest(http.MethodPost, "/api/v1/cart/items", body, "user-1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCartRemoveItemRequiresSelector(t *testing.T) {
	svc := newCartService(t, newMemCartStore())
	handler := CartRemoveItem(svc, nil)

	w := httptest.NewRecorder()
	handler(w, cartRequest(http.MethodDelete, "/api/v1/cart/items?product_id=tmt-bar", nil, "user-1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCartRemoveThenGetIsEmpty(t *testing.T) {
	store := newMemCartStore()
	svc := newCartService(t, store)

	add := CartAddItem(svc, nil)
	w := httptest.NewRecorder()
	add(w, cartRequest(http.MethodPost, "/api/v1/cart/items", []byte(`{"product_id":"tmt-bar","variant":"Fe500D","specification":"12mm","quantity":2}`), "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("seed add failed: %d %s", w.Code, w.Body.String())
	}

	remove := CartRemoveItem(svc, nil)
	w = httptest.NewRecorder()
	remove(w, cartRequest(http.MethodDelete, "/api/v1/cart/items?product_id=tmt-bar&variant=Fe500D&specification=12mm", nil, "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if items := decodeCartItems(t, w.Body); len(items) != 0 {
		t.Fatalf("expected empty cart after remove, got %d items", len(items))
	}

	get := CartGet(svc, nil)
	w = httptest.NewRecorder()
	get(w, cartRequest(http.MethodGet, "/api/v1/cart/", nil, "user-1"))
	if items := decodeCartItems(t, w.Body); len(items) != 0 {
		t.Fatalf("expected cart to stay empty, got %d items", len(items))
	}
}

func TestCartEndpointsRequireUserContext(t *testing.T) {
	svc := newCartService(t, newMemCartStore())

	handlers := map[string]http.HandlerFunc{
		"get":    CartGet(svc, nil),
		"add":    CartAddItem(svc, nil),
		"remove": CartRemoveItem(svc, nil),
		"clear":  CartClear(svc, nil),
	}

	for name, handler := range handlers {
		w := httptest.NewRecorder()
		handler(w, cartRequest(http.MethodGet, "/api/v1/cart/", nil, ""))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, w.Code)
		}
	}
}
