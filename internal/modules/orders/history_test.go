package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

func TestReorderPartialFailure(t *testing.T) {
	products := &fakeProducts{
		products: map[int64]catalog.Product{},
		fail:     map[int64]error{5: errors.New("connection reset")},
	}
	products.products[1] = prod(1, 4000)
	products.products[3] = prod(3, 500)

	o := Order{Number: "ORD-1", Items: []Item{
		{ProductID: 1, ProductName: "Aviator", Quantity: 1},
		{ProductID: 2, ProductName: "Discontinued", Quantity: 1},
		{ProductID: 3, ProductName: "Kit", Quantity: 2},
		{ProductID: 5, ProductName: "Flaky", Quantity: 1},
		{ProductName: "No ref", Quantity: 1},
	}}
	dst := &fakeCart{}
	res, err := NewHistory(nil, products, nil).Reorder(context.Background(), o, dst)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Added)
	assert.Equal(t, []added{{1, 1}, {3, 2}}, dst.added)
	require.Len(t, res.Failed, 3)

	assert.Equal(t, int64(2), res.Failed[0].ProductID)
	assert.True(t, res.Failed[0].NotFound)
	assert.Equal(t, int64(5), res.Failed[1].ProductID)
	assert.False(t, res.Failed[1].NotFound)
	assert.ErrorIs(t, res.Failed[2], ErrMissingProductRef)
}

func TestReorderNothingAdded(t *testing.T) {
	products := &fakeProducts{products: map[int64]catalog.Product{}}
	o := Order{Number: "ORD-2", Items: []Item{{ProductID: 9, Quantity: 1}}}
	res, err := NewHistory(nil, products, nil).Reorder(context.Background(), o, &fakeCart{})
	assert.ErrorIs(t, err, ErrNothingReordered)
	assert.Len(t, res.Failed, 1)
}

func TestReorderStopsOnCancelledContext(t *testing.T) {
	products := &fakeProducts{products: map[int64]catalog.Product{}}
	products.products[1] = prod(1, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := &fakeCart{}
	_, err := NewHistory(nil, products, nil).Reorder(ctx, Order{Items: []Item{{ProductID: 1, Quantity: 1}}}, dst)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dst.added)
}

func TestListNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	api := &fakeCustomer{orders: []Order{
		{Number: "A", CreatedAt: base},
		{Number: "C", CreatedAt: base.Add(48 * time.Hour)},
		{Number: "B", CreatedAt: base.Add(24 * time.Hour)},
	}}
	list, err := NewHistory(api, nil, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "C", list[0].Number)
	assert.Equal(t, "B", list[1].Number)
	assert.Equal(t, "A", list[2].Number)
}

func TestCancel(t *testing.T) {
	api := &fakeCustomer{orders: []Order{
		{Number: "P", Status: StatusPending},
		{Number: "S", Status: StatusShipped},
	}}
	h := NewHistory(api, nil, nil)

	o, err := h.Cancel(context.Background(), "P")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, []Status{StatusCancelled}, api.updated)

	_, err = h.Cancel(context.Background(), "S")
	assert.ErrorIs(t, err, ErrNotCancellable)
	assert.Len(t, api.updated, 1)
}
