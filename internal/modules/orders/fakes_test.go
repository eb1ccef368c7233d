package orders

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

type notFoundErr struct{ id int64 }

func (e notFoundErr) Error() string  { return "not found" }
func (e notFoundErr) NotFound() bool { return true }

type fakeProducts struct {
	products map[int64]catalog.Product
	fail     map[int64]error
}

func (f *fakeProducts) FetchProduct(_ context.Context, id int64) (catalog.Product, error) {
	if err, ok := f.fail[id]; ok {
		return catalog.Product{}, err
	}
	p, ok := f.products[id]
	if !ok {
		return catalog.Product{}, notFoundErr{id}
	}
	return p, nil
}

type added struct {
	id  int64
	qty int
}

type fakeCart struct{ added []added }

func (c *fakeCart) Add(p catalog.Product, qty int) { c.added = append(c.added, added{p.ID, qty}) }

type fakeCustomer struct {
	orders    []Order
	updateErr error
	updated   []Status
}

func (f *fakeCustomer) GetUserOrders(context.Context) ([]Order, error) { return f.orders, nil }

func (f *fakeCustomer) GetOrderDetails(_ context.Context, number string) (Order, error) {
	for _, o := range f.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return Order{}, notFoundErr{}
}

func (f *fakeCustomer) UpdateOrderStatus(_ context.Context, number string, s Status) (StatusUpdate, error) {
	if f.updateErr != nil {
		return StatusUpdate{}, f.updateErr
	}
	f.updated = append(f.updated, s)
	return StatusUpdate{Message: "Order status updated", Status: s}, nil
}

type fakeStaff struct {
	mu        sync.Mutex
	orders    []Order
	updateErr error
	// gate, when set, blocks UpdateOrderStatusAsStaff until closed.
	gate    chan struct{}
	entered chan struct{}
	assigns []Assignment
}

func (f *fakeStaff) FetchAllOrders(context.Context) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Order(nil), f.orders...), nil
}

func (f *fakeStaff) UpdateOrderStatusAsStaff(_ context.Context, number string, s Status) (StatusUpdate, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.updateErr != nil {
		return StatusUpdate{}, f.updateErr
	}
	return StatusUpdate{Message: "Status updated to " + string(s), OrderNumber: number}, nil
}

func (f *fakeStaff) AssignDelivery(_ context.Context, orderID, personID int64) (Assignment, error) {
	if orderID == 0 {
		return Assignment{}, errors.New("order required")
	}
	a := Assignment{OrderID: orderID, DeliveryPersonID: personID}
	f.assigns = append(f.assigns, a)
	return a, nil
}

func (f *fakeStaff) DeliveryPersons(context.Context) ([]DeliveryPerson, error) {
	return []DeliveryPerson{{ID: 8, Name: "Kamal", Email: "kamal@example.com"}}, nil
}

func (f *fakeStaff) PendingOrderCount(context.Context) (int, error) { return 2, nil }

func prod(id int64, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: "p", Price: decimal.NewFromInt(price)}
}
