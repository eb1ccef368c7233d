package backend

import (
	"context"
	"net/http"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

func (c *Client) CreateOrder(ctx context.Context, req orders.CreateRequest) (orders.Order, error) {
	var out orders.Order
	err := c.do(ctx, "create_order", http.MethodPost, "/api/orders/create/", req, &out)
	return out, err
}

func (c *Client) GetUserOrders(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	if err := c.do(ctx, "list_orders", http.MethodGet, "/api/orders/list/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrderDetails(ctx context.Context, number string) (orders.Order, error) {
	var out orders.Order
	err := c.do(ctx, "get_order", http.MethodGet, "/api/orders/"+seg(number)+"/", nil, &out)
	return out, err
}

type statusBody struct {
	Status orders.Status `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, number string, status orders.Status) (orders.StatusUpdate, error) {
	var out orders.StatusUpdate
	err := c.do(ctx, "update_order_status", http.MethodPatch, "/api/orders/"+seg(number)+"/status/", statusBody{status}, &out)
	return out, err
}
