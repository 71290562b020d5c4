// Package http provides http transport for the taxonomy catalog
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"cictt/internal/modkit/httpkit"
	perr "cictt/internal/platform/errors"
	"cictt/internal/platform/net/http/bind"
	str "cictt/internal/platform/strings"
	"cictt/internal/services/api/taxonomy/domain"
	svc "cictt/internal/services/api/taxonomy/service"
)

// Register mounts taxonomy endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/categories", h.categories)
	httpkit.Get(r, "/categories/{code}", h.category)
	httpkit.Get(r, "/categories/{code}/manual", h.manual)
	httpkit.Get(r, "/groups", h.groups)
	httpkit.Get(r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// query inputs go through the same validator as JSON bodies
func valid[T any](in T) (T, error) {
	if err := bind.Validate(in); err != nil {
		var zero T
		return zero, err
	}
	return in, nil
}

func codeOf(r *stdhttp.Request) (domain.CodeQuery, error) {
	return valid(domain.CodeQuery{Code: str.Code(httpkit.Param(r, "code"))})
}

// @Summary List categories
// @Tags Taxonomy
// @Param group query string false "Group label"
// @Success 200 {array} taxonomy.Category "ok"
// @Router /taxonomy/categories [get]
func (h *handlers) categories(r *stdhttp.Request) (any, error) {
	in, err := valid(domain.CategoriesQuery{Group: strings.TrimSpace(r.URL.Query().Get("group"))})
	if err != nil {
		return nil, err
	}
	return h.svc.Categories(r.Context(), in)
}

// @Summary Get one category
// @Tags Taxonomy
// @Param code path string true "Category code"
// @Success 200 {object} taxonomy.Category "ok"
// @Router /taxonomy/categories/{code} [get]
func (h *handlers) category(r *stdhttp.Request) (any, error) {
	in, err := codeOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Category(r.Context(), in)
}

// @Summary Fresh manual entry for a category
// @Tags Taxonomy
// @Param code path string true "Category code"
// @Success 200 {object} hazard.CategoryResult "ok"
// @Router /taxonomy/categories/{code}/manual [get]
func (h *handlers) manual(r *stdhttp.Request) (any, error) {
	in, err := codeOf(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Manual(r.Context(), in)
}

// @Summary List groups in taxonomy order
// @Tags Taxonomy
// @Success 200 {array} string "ok"
// @Router /taxonomy/groups [get]
func (h *handlers) groups(r *stdhttp.Request) (any, error) {
	return h.svc.Groups(r.Context())
}

// @Summary Search categories by keyword
// @Tags Taxonomy
// @Param q query string true "Keyword"
// @Param threshold query int false "Weights must be above this"
// @Success 200 {array} taxonomy.SearchHit "ok"
// @Router /taxonomy/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.SearchQuery{Q: strings.TrimSpace(q.Get("q"))}
	if raw := q.Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("threshold must be an integer"), "threshold")
		}
		in.Threshold = n
	}
	in, err := valid(in)
	if err != nil {
		return nil, err
	}
	return h.svc.Search(r.Context(), in)
}
