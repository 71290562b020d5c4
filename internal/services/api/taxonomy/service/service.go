// Package service exposes the read-only taxonomy catalog
package service

import (
	"context"

	"cictt/internal/core/engine"
	"cictt/internal/core/hazard"
	"cictt/internal/core/taxonomy"
	perr "cictt/internal/platform/errors"
	"cictt/internal/services/api/taxonomy/domain"
)

// Service defines the taxonomy service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the taxonomy service over the engine's catalog
type Svc struct {
	eng *engine.Engine
}

// New constructs a taxonomy service
func New(eng *engine.Engine) *Svc {
	if eng == nil {
		panic("taxonomy.Service requires a non nil Engine")
	}
	return &Svc{eng: eng}
}

var _ Service = (*Svc)(nil)

// Categories lists every category, or one group's. An unknown group is NotFound
func (s *Svc) Categories(_ context.Context, in domain.CategoriesQuery) ([]taxonomy.Category, error) {
	if in.Group == "" {
		return s.eng.ListCategories(), nil
	}
	out := s.eng.ByGroup(in.Group)
	if len(out) == 0 {
		return nil, perr.WithField(perr.NotFoundf("unknown group %q", in.Group), "group")
	}
	return out, nil
}

// Category returns one category with its vocabulary
func (s *Svc) Category(_ context.Context, in domain.CodeQuery) (taxonomy.Category, error) {
	c, ok := s.eng.GetCategory(in.Code)
	if !ok {
		return taxonomy.Category{}, unknownCode(in.Code)
	}
	return c, nil
}

// Manual returns a fresh manual entry the client can append to its result
func (s *Svc) Manual(_ context.Context, in domain.CodeQuery) (hazard.CategoryResult, error) {
	cr, ok := s.eng.CreateManual(in.Code)
	if !ok {
		return hazard.CategoryResult{}, unknownCode(in.Code)
	}
	return cr, nil
}

// Groups lists group labels in taxonomy order
func (s *Svc) Groups(context.Context) ([]string, error) {
	return s.eng.ListGroups(), nil
}

// Search finds categories with a keyword containing Q and weight above Threshold.
// No hits is an empty list
func (s *Svc) Search(_ context.Context, in domain.SearchQuery) ([]domain.SearchHit, error) {
	hits := s.eng.Search(in.Q, in.Threshold)
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	return hits, nil
}

func unknownCode(code string) error {
	return perr.WithField(perr.NotFoundf("unknown category code %s", code), "code")
}
