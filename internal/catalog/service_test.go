package catalog

import (
	"strings"
	"testing"

	pkgerrors "github.com/buildsetu/buildsetu-backend/pkg/errors"
)

func TestListReturnsWholeCatalog(t *testing.T) {
	svc := NewService()

	all := svc.List("")
	if len(all) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if got := svc.List("All"); len(got) != len(all) {
		t.Fatalf("expected All to match empty filter, got %d vs %d", len(got), len(all))
	}

	for _, p := range all {
		if p.Slug == "" || p.Title == "" || p.Category == "" {
			t.Fatalf("product %q missing required fields", p.ID)
		}
		if len(p.Variants) == 0 {
			t.Fatalf("product %q has no variants", p.ID)
		}
		for _, v := range p.Variants {
			if len(v.Specifications) == 0 {
				t.Fatalf("variant %q of %q has no specifications", v.Name, p.ID)
			}
		}
	}
}

func TestListFiltersByCategory(t *testing.T) {
	svc := NewService()

	filtered := svc.List("m.s cuplock")
	if len(filtered) == 0 {
		t.Fatal("expected cuplock products")
	}
	for _, p := range filtered {
		if !strings.EqualFold(p.Category, "M.S Cuplock") {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}

	if got := svc.List("no-such-category"); len(got) != 0 {
		t.Fatalf("expected empty result got %d", len(got))
	}
}

func TestGetBySlug(t *testing.T) {
	svc := NewService()

	p, err := svc.Get("cuplock-vertical-3m")
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if p.ID != "cuplock-vertical-3m" {
		t.Fatalf("unexpected product %q", p.ID)
	}

	_, err = svc.Get("missing")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found got %v", err)
	}
}

func TestFindVariant(t *testing.T) {
	svc := NewService()

	p, v, err := svc.FindVariant("cuplock-vertical-3m", "standard")
	if err != nil {
		t.Fatalf("expected case-insensitive match got %v", err)
	}
	if p.ID != "cuplock-vertical-3m" || v.Name != "Standard" {
		t.Fatalf("unexpected match %q / %q", p.ID, v.Name)
	}

	_, _, err = svc.FindVariant("cuplock-vertical-3m", "Extra Heavy")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error got %v", err)
	}
}
