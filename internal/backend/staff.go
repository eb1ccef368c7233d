package backend

import (
	"context"
	"net/http"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

// Role-scoped endpoints used by admin, manufacturer and delivery staff.

func (c *Client) FetchAllOrders(ctx context.Context) ([]orders.Order, error) {
	var out []orders.Order
	if err := c.do(ctx, "staff_list_orders", http.MethodGet, "/api/orders/role/orders/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatusAsStaff(ctx context.Context, number string, status orders.Status) (orders.StatusUpdate, error) {
	var out orders.StatusUpdate
	err := c.do(ctx, "staff_update_status", http.MethodPatch, "/api/orders/role/"+seg(number)+"/status/", statusBody{status}, &out)
	return out, err
}

type assignBody struct {
	OrderID        int64 `json:"order_id"`
	DeliveryPerson int64 `json:"delivery_person"`
}

func (c *Client) AssignDelivery(ctx context.Context, orderID, deliveryPersonID int64) (orders.Assignment, error) {
	var out orders.Assignment
	err := c.do(ctx, "assign_delivery", http.MethodPost, "/api/orders/role/assign-delivery/", assignBody{orderID, deliveryPersonID}, &out)
	return out, err
}

func (c *Client) DeliveryPersons(ctx context.Context) ([]orders.DeliveryPerson, error) {
	var out []orders.DeliveryPerson
	if err := c.do(ctx, "delivery_persons", http.MethodGet, "/api/orders/role/delivery-persons/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PendingOrderCount(ctx context.Context) (int, error) {
	var out struct {
		PendingOrders int `json:"pending_orders"`
	}
	if err := c.do(ctx, "pending_order_count", http.MethodGet, "/api/orders/role/pending-order-count/", nil, &out); err != nil {
		return 0, err
	}
	return out.PendingOrders, nil
}
