package orders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// StaffAPI is the slice of the backend used by the admin and delivery
// dashboards.
type StaffAPI interface {
	FetchAllOrders(ctx context.Context) ([]Order, error)
	UpdateOrderStatusAsStaff(ctx context.Context, number string, status Status) (StatusUpdate, error)
	AssignDelivery(ctx context.Context, orderID, deliveryPersonID int64) (Assignment, error)
	DeliveryPersons(ctx context.Context) ([]DeliveryPerson, error)
	PendingOrderCount(ctx context.Context) (int, error)
}

// BoardOrder is an order as shown on the dashboard. Pending holds a status
// change sent to the backend but not yet acknowledged.
type BoardOrder struct {
	Order
	Pending Status `json:"pending_status,omitempty"`
}

// Board keeps the last fetched order list. Local status changes are an
// overlay on top of it: committed when the backend accepts them, dropped
// when it does not.
type Board struct {
	api StaffAPI
	log *slog.Logger

	mu      sync.Mutex
	orders  []Order
	index   map[string]int
	overlay map[string]Status
}

func NewBoard(api StaffAPI, log *slog.Logger) *Board {
	if log == nil {
		log = slog.Default()
	}
	return &Board{api: api, log: log, index: map[string]int{}, overlay: map[string]Status{}}
}

// Refresh replaces the list with the backend's.
func (b *Board) Refresh(ctx context.Context) ([]BoardOrder, error) {
	list, err := b.api.FetchAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = list
	b.index = make(map[string]int, len(list))
	for i, o := range list {
		b.index[o.Number] = i
	}
	return b.snapshotLocked(), nil
}

// Orders returns the list with pending overlays applied.
func (b *Board) Orders() []BoardOrder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() []BoardOrder {
	out := make([]BoardOrder, 0, len(b.orders))
	for _, o := range b.orders {
		bo := BoardOrder{Order: o}
		if st, ok := b.overlay[o.Number]; ok {
			bo.Status = st
			bo.Pending = st
		}
		out = append(out, bo)
	}
	return out
}

// UpdateStatus applies status optimistically, sends it to the backend and
// commits or reverts depending on the outcome.
func (b *Board) UpdateStatus(ctx context.Context, number string, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	b.mu.Lock()
	if _, ok := b.index[number]; !ok {
		b.mu.Unlock()
		return Order{}, fmt.Errorf("%w: %s", ErrUnknownOrder, number)
	}
	b.overlay[number] = status
	b.mu.Unlock()

	res, err := b.api.UpdateOrderStatusAsStaff(ctx, number, status)

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.overlay, number)
	i, ok := b.index[number]
	if err != nil {
		b.log.Warn("order_status_update_reverted", "order_number", number, "status", status, "err", err)
		if ok {
			return b.orders[i], err
		}
		return Order{}, err
	}
	if !ok {
		// List refreshed mid-flight without this order.
		return Order{Number: number, Status: status}, nil
	}
	b.orders[i].Status = status
	if res.Status.Valid() {
		b.orders[i].Status = res.Status
	}
	return b.orders[i], nil
}

// AssignDelivery assigns a delivery person; the backend marks the order shipped.
func (b *Board) AssignDelivery(ctx context.Context, number string, personID int64) (Order, error) {
	b.mu.Lock()
	i, ok := b.index[number]
	var orderID int64
	if ok {
		orderID = b.orders[i].ID
	}
	b.mu.Unlock()
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrUnknownOrder, number)
	}

	if _, err := b.api.AssignDelivery(ctx, orderID, personID); err != nil {
		return Order{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok = b.index[number]
	if !ok {
		return Order{Number: number, Status: StatusShipped}, nil
	}
	b.orders[i].Status = StatusShipped
	b.orders[i].DeliveryPerson = &DeliveryPerson{ID: personID}
	return b.orders[i], nil
}

func (b *Board) DeliveryPersons(ctx context.Context) ([]DeliveryPerson, error) {
	return b.api.DeliveryPersons(ctx)
}

func (b *Board) PendingCount(ctx context.Context) (int, error) {
	return b.api.PendingOrderCount(ctx)
}
