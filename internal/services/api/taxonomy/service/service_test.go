package service

import (
	"context"
	"testing"

	"cictt/internal/core/engine"
	perr "cictt/internal/platform/errors"
	"cictt/internal/platform/testkit"
	"cictt/internal/services/api/taxonomy/domain"
)

func TestNew_PanicsOnNil(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestCategories(t *testing.T) {
	s := New(engine.New(nil))
	ctx := context.Background()

	all, err := s.Categories(ctx, domain.CategoriesQuery{})
	if err != nil || len(all) != 35 {
		t.Fatalf("all: len=%d err=%v", len(all), err)
	}

	loc, err := s.Categories(ctx, domain.CategoriesQuery{Group: "Loss of Control"})
	if err != nil || len(loc) != 3 {
		t.Fatalf("group: len=%d err=%v", len(loc), err)
	}

	_, err = s.Categories(ctx, domain.CategoriesQuery{Group: "Nope"})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("unknown group err = %v", err)
	}
}

func TestCategoryAndManual(t *testing.T) {
	s := New(engine.New(nil))
	ctx := context.Background()

	c, err := s.Category(ctx, domain.CodeQuery{Code: "ICE"})
	if err != nil || c.Code != "ICE" || len(c.Keywords) == 0 {
		t.Fatalf("Category(ICE) = %+v, %v", c, err)
	}
	if _, err := s.Category(ctx, domain.CodeQuery{Code: "NOPE"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Category(NOPE) err = %v", err)
	}

	m, err := s.Manual(ctx, domain.CodeQuery{Code: "BIRD"})
	if err != nil || !m.IsManuallyAdded || m.Score != 0 || m.UserWeight != 1 {
		t.Fatalf("Manual(BIRD) = %+v, %v", m, err)
	}
	if _, err := s.Manual(ctx, domain.CodeQuery{Code: "NOPE"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Manual(NOPE) err = %v", err)
	}
}

func TestGroupsAndSearch(t *testing.T) {
	s := New(engine.New(nil))
	ctx := context.Background()

	groups, _ := s.Groups(ctx)
	if len(groups) != 11 || groups[0] != "Loss of Control" {
		t.Fatalf("groups = %v", groups)
	}

	hits, _ := s.Search(ctx, domain.SearchQuery{Q: "fuel"})
	if len(hits) == 0 || hits[0].Category.Code != "FUEL" {
		t.Fatalf("hits = %+v", hits)
	}
	none, _ := s.Search(ctx, domain.SearchQuery{Q: "fuel", Threshold: 10})
	if none == nil || len(none) != 0 {
		t.Fatalf("no hits should be an empty list, got %#v", none)
	}
}
