package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

const maxLineQty = 99

// CartHandler handles the session cart (GET/POST/PATCH/DELETE /api/cart...).
type CartHandler struct {
	Catalog  *catalog.Service
	Sessions *sessions.Registry
	View     *Presenter
	Log      *slog.Logger
}

func NewCartHandler(svc *catalog.Service, reg *sessions.Registry, p *Presenter, log *slog.Logger) *CartHandler {
	return &CartHandler{Catalog: svc, Sessions: reg, View: p, Log: log}
}

// Get handles GET /api/cart. ?delivery picks the shipping rule for the
// summary; it defaults to the checkout's current choice.
func (h *CartHandler) Get(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	delivery := c.Query("delivery")
	switch delivery {
	case orders.DeliveryHome, orders.DeliveryPickup:
	case "":
		delivery = s.Checkout.State().DeliveryOption
	default:
		middleware.Fail(c, apperr.InvalidErr("Choose home delivery or store pickup.", map[string]string{"delivery": "invalid"}))
		return
	}
	c.JSON(http.StatusOK, h.View.CartPage(s.Cart.Items(), delivery))
}

type addItemReq struct {
	ProductID int64 `json:"product_id" binding:"required,gte=1"`
	Quantity  int   `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req addItemReq
	if !bindJSON(c, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, err := h.Catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !p.InStock() {
		middleware.Fail(c, apperr.ConflictErr(p.Name+" is out of stock."))
		return
	}

	s.Cart.Add(p, req.Quantity)
	s.Notify(view.Notice{Kind: view.NoticeSuccess, Title: "Added to Cart", Message: p.Name + " has been added to your cart."})
	h.respond(c, s, http.StatusCreated)
}

type updateQtyReq struct {
	// Quantity below 1 leaves the line unchanged.
	Quantity *int `json:"quantity" binding:"required,max=99"`
}

// Update handles PATCH /api/cart/items/:productID.
func (h *CartHandler) Update(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var req updateQtyReq
	if !bindJSON(c, &req) {
		return
	}
	if !s.Cart.Has(id) {
		middleware.Fail(c, apperr.NotFoundErr("That product is not in your cart."))
		return
	}
	s.Cart.UpdateQuantity(id, *req.Quantity)
	h.respond(c, s, http.StatusOK)
}

// Remove handles DELETE /api/cart/items/:productID. Removing an absent
// product is not an error.
func (h *CartHandler) Remove(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	s.Cart.RemoveFromCart(id)
	h.respond(c, s, http.StatusOK)
}

type lensReq struct {
	Type           string `json:"type"`
	OptionID       string `json:"option_id"`
	PrescriptionID string `json:"prescription_id"`
	Clear          bool   `json:"clear"`
}

// SetLens handles PUT /api/cart/items/:productID/lens.
func (h *CartHandler) SetLens(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	var req lensReq
	if !bindJSON(c, &req) {
		return
	}
	if !s.Cart.Has(id) {
		middleware.Fail(c, apperr.NotFoundErr("That product is not in your cart."))
		return
	}

	if req.Clear {
		s.Cart.UpdateLensOption(id, nil)
		h.respond(c, s, http.StatusOK)
		return
	}

	lo, err := cart.LookupLens(cart.LensType(req.Type), req.OptionID, req.PrescriptionID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	s.Cart.UpdateLensOption(id, &lo)
	h.respond(c, s, http.StatusOK)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.Cart.ClearCart()
	h.respond(c, s, http.StatusOK)
}

// LensOptions handles GET /api/lens-options.
func (h *CartHandler) LensOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		string(cart.LensStandard):     h.View.LensChoices(cart.LensChoices(cart.LensStandard)),
		string(cart.LensPrescription): h.View.LensChoices(cart.LensChoices(cart.LensPrescription)),
	})
}

// respond persists the cart and renders it. A persistence failure is
// logged; the in-memory cart stays authoritative.
func (h *CartHandler) respond(c *gin.Context, s *sessions.Session, status int) {
	if err := h.Sessions.Save(c.Request.Context(), s); err != nil {
		h.Log.Warn("cart_persist_failed", "request_id", middleware.GetRequestID(c), "session_id", s.ID, "err", err)
	}
	c.JSON(status, h.View.CartPage(s.Cart.Items(), s.Checkout.State().DeliveryOption))
}
