package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/users"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

// CatalogHandler serves product listings and the per-session filter state.
type CatalogHandler struct {
	Catalog  *catalog.Service
	Profiles users.ProfileSource
	View     *Presenter
	Log      *slog.Logger
}

func NewCatalogHandler(svc *catalog.Service, profiles users.ProfileSource, p *Presenter, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Profiles: profiles, View: p, Log: log}
}

// Products handles GET /api/products; filters come from the query string.
func (h *CatalogHandler) Products(c *gin.Context) {
	f, err := catalog.FiltersFromQuery(c.Request.URL.Query())
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid price range.", nil).WithCause(err))
		return
	}
	list, err := h.Catalog.Search(c.Request.Context(), f)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.View.CatalogPage(f, list))
}

// Product handles GET /api/products/:productID.
func (h *CatalogHandler) Product(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	p, err := h.Catalog.Product(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.View.ProductCard(p))
}

// Get handles GET /api/catalog. The first visit loads the catalog and
// seeds filters from the query and the shopper's face shape preference.
func (h *CatalogHandler) Get(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if !s.Catalog.Loaded() {
		if !h.load(c, s.Catalog) {
			return
		}
	}
	c.JSON(http.StatusOK, h.View.CatalogPage(s.Catalog.Filters(), s.Catalog.Products()))
}

func (h *CatalogHandler) load(c *gin.Context, v *catalog.View) bool {
	ctx := c.Request.Context()
	list, err := h.Catalog.Products(ctx)
	if err != nil {
		middleware.Fail(c, err)
		return false
	}

	seed, err := catalog.FiltersFromQuery(c.Request.URL.Query())
	if err != nil {
		seed = catalog.DefaultFilters()
	}
	if _, authed := middleware.CurrentUser(c); authed && len(seed.FaceShape) == 0 && h.Profiles != nil {
		if p, err := h.Profiles.FetchProfile(ctx); err != nil {
			h.Log.Warn("profile_fetch_failed", "request_id", middleware.GetRequestID(c), "err", err)
		} else {
			seed = seed.SeedFaceShape(p.FaceShapePreference())
		}
	}

	v.Update(func(catalog.Filters) catalog.Filters { return seed })
	v.SetProducts(list)
	return true
}

type filterReq struct {
	Facet    string  `json:"facet"`
	Value    *string `json:"value"`
	MinPrice *string `json:"min_price"`
	MaxPrice *string `json:"max_price"`
	Search   *string `json:"search"`
}

// PatchFilters handles PATCH /api/catalog/filters. A request may toggle
// one facet value, set the price range, set the search term, or any mix.
func (h *CatalogHandler) PatchFilters(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req filterReq
	if !bindJSON(c, &req) {
		return
	}

	var updates []func(catalog.Filters) catalog.Filters
	if req.Facet != "" {
		facet, err := catalog.ParseFacet(req.Facet)
		if err != nil {
			middleware.Fail(c, apperr.InvalidErr("Unknown filter.", map[string]string{"facet": "invalid"}).WithCause(err))
			return
		}
		value := catalog.ClearFacet
		if req.Value != nil {
			value = *req.Value
		}
		updates = append(updates, func(f catalog.Filters) catalog.Filters { return f.Toggle(facet, value) })
	}
	if req.MinPrice != nil || req.MaxPrice != nil {
		cur := s.Catalog.Filters()
		lo, err := priceOr(req.MinPrice, cur.MinPrice)
		if err != nil {
			middleware.Fail(c, apperr.InvalidErr("Invalid price range.", map[string]string{"min_price": "invalid"}).WithCause(err))
			return
		}
		hi, err := priceOr(req.MaxPrice, cur.MaxPrice)
		if err != nil {
			middleware.Fail(c, apperr.InvalidErr("Invalid price range.", map[string]string{"max_price": "invalid"}).WithCause(err))
			return
		}
		updates = append(updates, func(f catalog.Filters) catalog.Filters { return f.WithPriceRange(lo, hi) })
	}
	if req.Search != nil {
		q := *req.Search
		updates = append(updates, func(f catalog.Filters) catalog.Filters { return f.WithSearch(q) })
	}
	if len(updates) == 0 {
		middleware.Fail(c, apperr.InvalidErr("Nothing to change.", nil))
		return
	}

	if !s.Catalog.Loaded() && !h.load(c, s.Catalog) {
		return
	}
	s.Catalog.Update(func(f catalog.Filters) catalog.Filters {
		for _, u := range updates {
			f = u(f)
		}
		return f
	})
	c.JSON(http.StatusOK, h.View.CatalogPage(s.Catalog.Filters(), s.Catalog.Products()))
}

// ClearFilters handles DELETE /api/catalog/filters.
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.Catalog.Clear()
	c.JSON(http.StatusOK, h.View.CatalogPage(s.Catalog.Filters(), s.Catalog.Products()))
}

// Refresh handles POST /api/admin/catalog/refresh.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.Catalog.Refresh(c.Request.Context()); err != nil {
		middleware.Fail(c, err)
		return
	}
	list, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if s, ok := middleware.CurrentSession(c); ok {
		s.Catalog.SetProducts(list)
	}
	c.JSON(http.StatusOK, gin.H{"products": len(list)})
}

func priceOr(raw *string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if raw == nil {
		return fallback, nil
	}
	return decimal.NewFromString(*raw)
}
