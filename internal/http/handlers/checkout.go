package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/users"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

// CheckoutHandler drives the checkout wizard of the session.
type CheckoutHandler struct {
	Sessions *sessions.Registry
	Profiles users.ProfileSource
	View     *Presenter
	Log      *slog.Logger
}

func NewCheckoutHandler(reg *sessions.Registry, profiles users.ProfileSource, p *Presenter, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{Sessions: reg, Profiles: profiles, View: p, Log: log}
}

// Get handles GET /api/checkout. An empty cart sends the shopper back to
// the cart unless an order was just placed.
func (h *CheckoutHandler) Get(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if s.Cart.IsEmpty() && !s.Checkout.Complete() {
		middleware.Fail(c, checkout.ErrEmptyCart)
		return
	}
	h.seedBilling(c, s)
	h.render(c, s)
}

func (h *CheckoutHandler) seedBilling(c *gin.Context, s *sessions.Session) {
	if _, authed := middleware.CurrentUser(c); !authed || h.Profiles == nil {
		return
	}
	if s.Checkout.State().Billing != (checkout.BillingInfo{}) {
		return
	}
	defaults, _, err := users.Defaults(c.Request.Context(), h.Profiles)
	if err != nil {
		h.Log.Warn("billing_defaults_failed", "request_id", middleware.GetRequestID(c), "err", err)
		return
	}
	s.Checkout.SeedBilling(defaults)
}

// PutBilling handles PUT /api/checkout/billing.
func (h *CheckoutHandler) PutBilling(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var b checkout.BillingInfo
	if !bindJSON(c, &b) {
		return
	}
	if err := s.Checkout.SetBilling(b); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.render(c, s)
}

type deliveryReq struct {
	DeliveryOption string `json:"delivery_option"`
	PaymentMethod  string `json:"payment_method"`
}

// PutDelivery handles PUT /api/checkout/delivery.
func (h *CheckoutHandler) PutDelivery(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req deliveryReq
	if !bindJSON(c, &req) {
		return
	}
	if req.DeliveryOption == "" && req.PaymentMethod == "" {
		middleware.Fail(c, apperr.InvalidErr("Nothing to change.", nil))
		return
	}
	if req.DeliveryOption != "" {
		if err := s.Checkout.SetDelivery(req.DeliveryOption); err != nil {
			middleware.Fail(c, err)
			return
		}
	}
	if req.PaymentMethod != "" {
		if err := s.Checkout.SetPayment(req.PaymentMethod); err != nil {
			middleware.Fail(c, err)
			return
		}
	}
	h.render(c, s)
}

type nextReq struct {
	From int `json:"from"`
}

// Next handles POST /api/checkout/next. from names the step the client
// was showing; a stale value leaves the wizard where it is.
func (h *CheckoutHandler) Next(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req nextReq
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	if _, err := s.Checkout.Next(checkout.Step(req.From)); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.render(c, s)
}

// Prev handles POST /api/checkout/prev.
func (h *CheckoutHandler) Prev(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.Checkout.Prev()
	h.render(c, s)
}

type paymentReq struct {
	PaymentID string `json:"payment_id"`
}

// PaymentSuccess handles POST /api/checkout/payment-success.
func (h *CheckoutHandler) PaymentSuccess(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	var req paymentReq
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	o, err := s.Checkout.HandlePaymentSuccess(c.Request.Context(), req.PaymentID, userIDPtr(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	page := h.View.CheckoutPage(s.Checkout.State(), s.Cart.Items())
	c.JSON(http.StatusCreated, gin.H{
		"checkout": page,
		"order":    h.View.OrderDetail(o),
	})
}

// Finish handles POST /api/checkout/finish: after a placed order the cart
// is emptied and the wizard starts over.
func (h *CheckoutHandler) Finish(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	st := s.Checkout.State()
	if !st.Complete {
		middleware.Fail(c, apperr.ConflictErr("No order has been placed yet."))
		return
	}

	s.Cart.ClearCart()
	s.Checkout.Reset()
	if err := h.Sessions.Save(c.Request.Context(), s); err != nil {
		h.Log.Warn("cart_persist_failed", "request_id", middleware.GetRequestID(c), "session_id", s.ID, "err", err)
	}
	c.JSON(http.StatusOK, gin.H{"order_number": st.Order.Number, "redirect": "/"})
}

func (h *CheckoutHandler) render(c *gin.Context, s *sessions.Session) {
	c.JSON(http.StatusOK, h.View.CheckoutPage(s.Checkout.State(), s.Cart.Items()))
}

// NoticesHandler drains the session's queued notices.
type NoticesHandler struct{}

func (NoticesHandler) List(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": s.Drain()})
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
