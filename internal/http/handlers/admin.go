package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
)

// AdminHandler serves the staff order dashboard.
type AdminHandler struct {
	Sessions *sessions.Registry
	View     *Presenter
	Log      *slog.Logger
}

func NewAdminHandler(reg *sessions.Registry, p *Presenter, log *slog.Logger) *AdminHandler {
	return &AdminHandler{Sessions: reg, View: p, Log: log}
}

func (h *AdminHandler) board(c *gin.Context) (*orders.Board, bool) {
	s, ok := currentSession(c)
	if !ok {
		return nil, false
	}
	return h.Sessions.Board(s), true
}

// ensureLoaded fetches the list once so mutations can resolve numbers.
func ensureLoaded(ctx context.Context, b *orders.Board) error {
	if len(b.Orders()) > 0 {
		return nil
	}
	_, err := b.Refresh(ctx)
	return err
}

// List handles GET /api/admin/orders. ?status narrows the list.
func (h *AdminHandler) List(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	list, err := b.Refresh(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		want, err := orders.ParseStatus(raw)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		kept := list[:0]
		for _, bo := range list {
			if bo.Status == want {
				kept = append(kept, bo)
			}
		}
		list = kept
	}
	c.JSON(http.StatusOK, gin.H{"orders": h.View.BoardList(list)})
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/admin/orders/:number/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	n, ok := orderNumberParam(c)
	if !ok {
		return
	}
	var req statusReq
	if !bindJSON(c, &req) {
		return
	}
	st, err := orders.ParseStatus(req.Status)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := ensureLoaded(ctx, b); err != nil {
		middleware.Fail(c, err)
		return
	}
	o, err := b.UpdateStatus(ctx, n, st)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.View.OrderListItem(o, ""))
}

type assignReq struct {
	OrderNumber      string `json:"order_number" binding:"required"`
	DeliveryPersonID int64  `json:"delivery_person_id" binding:"required,gte=1"`
}

// AssignDelivery handles POST /api/admin/orders/assign-delivery.
func (h *AdminHandler) AssignDelivery(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	var req assignReq
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if err := ensureLoaded(ctx, b); err != nil {
		middleware.Fail(c, err)
		return
	}
	o, err := b.AssignDelivery(ctx, strings.TrimSpace(req.OrderNumber), req.DeliveryPersonID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.View.OrderListItem(o, ""))
}

// PendingCount handles GET /api/admin/orders/pending-count.
func (h *AdminHandler) PendingCount(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	n, err := b.PendingCount(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending_orders": n})
}

// DeliveryPersons handles GET /api/admin/delivery-persons.
func (h *AdminHandler) DeliveryPersons(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}
	people, err := b.DeliveryPersons(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_persons": people})
}
