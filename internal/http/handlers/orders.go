package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

// OrdersHandler serves the signed-in customer's order history.
type OrdersHandler struct {
	History  *orders.History
	Sessions *sessions.Registry
	View     *Presenter
	Log      *slog.Logger
}

func NewOrdersHandler(h *orders.History, reg *sessions.Registry, p *Presenter, log *slog.Logger) *OrdersHandler {
	return &OrdersHandler{History: h, Sessions: reg, View: p, Log: log}
}

func orderNumberParam(c *gin.Context) (string, bool) {
	n := strings.TrimSpace(c.Param("number"))
	if n == "" {
		middleware.Fail(c, apperr.InvalidErr("Order number is required.", nil))
		return "", false
	}
	return n, true
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(c *gin.Context) {
	list, err := h.History.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": h.View.OrderList(list)})
}

// Detail handles GET /api/orders/:number.
func (h *OrdersHandler) Detail(c *gin.Context) {
	n, ok := orderNumberParam(c)
	if !ok {
		return
	}
	o, err := h.History.Get(c.Request.Context(), n)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.View.OrderDetail(o))
}

// Cancel handles POST /api/orders/:number/cancel.
func (h *OrdersHandler) Cancel(c *gin.Context) {
	n, ok := orderNumberParam(c)
	if !ok {
		return
	}
	o, err := h.History.Cancel(c.Request.Context(), n)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if s, ok := middleware.CurrentSession(c); ok {
		s.Notify(view.Notice{Kind: view.NoticeSuccess, Title: "Order Cancelled", Message: fmt.Sprintf("Order #%s has been cancelled.", o.Number)})
	}
	c.JSON(http.StatusOK, h.View.OrderDetail(o))
}

// Reorder handles POST /api/orders/:number/reorder. Lines that can no
// longer be bought are reported next to the refreshed cart.
func (h *OrdersHandler) Reorder(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	n, ok := orderNumberParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	o, err := h.History.Get(ctx, n)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	res, err := h.History.Reorder(ctx, o, s.Cart)
	if res.Added > 0 {
		if perr := h.Sessions.Save(ctx, s); perr != nil {
			h.Log.Warn("cart_persist_failed", "request_id", middleware.GetRequestID(c), "session_id", s.ID, "err", perr)
		}
	}
	if err != nil {
		if errors.Is(err, orders.ErrNothingReordered) {
			ae := middleware.Translate(err)
			ae.Fields = reorderFields(res.Failed)
			middleware.Fail(c, ae)
			return
		}
		middleware.Fail(c, err)
		return
	}

	notice := view.Notice{Kind: view.NoticeSuccess, Title: "Items Added", Message: fmt.Sprintf("%d item(s) from order #%s were added to your cart.", res.Added, o.Number)}
	if len(res.Failed) > 0 {
		notice.Kind = view.NoticeWarning
		notice.Message += fmt.Sprintf(" %d item(s) are no longer available.", len(res.Failed))
	}
	s.Notify(notice)

	c.JSON(http.StatusOK, gin.H{
		"reorder": res,
		"cart":    h.View.CartPage(s.Cart.Items(), s.Checkout.State().DeliveryOption),
	})
}

func reorderFields(failed []orders.ReorderFailure) map[string]string {
	out := make(map[string]string, len(failed))
	for i, f := range failed {
		key := f.ProductName
		if key == "" {
			key = fmt.Sprintf("item_%d", i+1)
		}
		out[key] = f.Reason
	}
	return out
}

// Invoice handles GET /api/orders/:number/invoice as a plain-text download.
func (h *OrdersHandler) Invoice(c *gin.Context) {
	n, ok := orderNumberParam(c)
	if !ok {
		return
	}
	o, err := h.History.Get(c.Request.Context(), n)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.txt"`, o.Number))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(orders.Invoice(o, h.View.Currency)))
}
