package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

// CustomerAPI is the slice of the backend a signed-in customer uses.
type CustomerAPI interface {
	GetUserOrders(ctx context.Context) ([]Order, error)
	GetOrderDetails(ctx context.Context, number string) (Order, error)
	UpdateOrderStatus(ctx context.Context, number string, status Status) (StatusUpdate, error)
}

type ProductFetcher interface {
	FetchProduct(ctx context.Context, id int64) (catalog.Product, error)
}

// CartAdder receives reordered products.
type CartAdder interface {
	Add(p catalog.Product, qty int)
}

type History struct {
	api      CustomerAPI
	products ProductFetcher
	log      *slog.Logger
}

func NewHistory(api CustomerAPI, products ProductFetcher, log *slog.Logger) *History {
	if log == nil {
		log = slog.Default()
	}
	return &History{api: api, products: products, log: log}
}

// List returns the customer's orders, newest first.
func (h *History) List(ctx context.Context) ([]Order, error) {
	list, err := h.api.GetUserOrders(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (h *History) Get(ctx context.Context, number string) (Order, error) {
	return h.api.GetOrderDetails(ctx, number)
}

// Cancel cancels an order that has not shipped yet.
func (h *History) Cancel(ctx context.Context, number string) (Order, error) {
	o, err := h.api.GetOrderDetails(ctx, number)
	if err != nil {
		return Order{}, err
	}
	if !o.Status.Cancellable() {
		return Order{}, fmt.Errorf("%w: order %s is %s", ErrNotCancellable, number, o.Status)
	}
	res, err := h.api.UpdateOrderStatus(ctx, number, StatusCancelled)
	if err != nil {
		return Order{}, err
	}
	o.Status = StatusCancelled
	if res.Status.Valid() {
		o.Status = res.Status
	}
	return o, nil
}

type ReorderResult struct {
	OrderNumber string           `json:"order_number"`
	Added       int              `json:"added"`
	Failed      []ReorderFailure `json:"failed"`
}

// Reorder re-adds every line of o to dst, fetching each product fresh.
// A line that fails is reported and skipped; the others are still added.
// ErrNothingReordered is returned only when no unit could be added.
func (h *History) Reorder(ctx context.Context, o Order, dst CartAdder) (ReorderResult, error) {
	res := ReorderResult{OrderNumber: o.Number, Failed: []ReorderFailure{}}
	for _, it := range o.Items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		id := it.ProductRef()
		if id == 0 {
			res.Failed = append(res.Failed, ReorderFailure{
				ProductName: it.ProductName,
				Reason:      "missing product reference",
				Err:         ErrMissingProductRef,
			})
			continue
		}

		p, err := h.products.FetchProduct(ctx, id)
		if err != nil {
			f := ReorderFailure{ProductID: id, ProductName: it.ProductName, Err: err, NotFound: isNotFound(err)}
			if f.NotFound {
				f.Reason = fmt.Sprintf("product %d no longer exists", id)
			} else {
				f.Reason = fmt.Sprintf("could not load product %d", id)
			}
			h.log.Warn("reorder_item_failed", "order_number", o.Number, "product_id", id, "err", err)
			res.Failed = append(res.Failed, f)
			continue
		}

		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		dst.Add(p, qty)
		res.Added += qty
	}

	if res.Added == 0 && len(o.Items) > 0 {
		return res, ErrNothingReordered
	}
	return res, nil
}

// isNotFound matches errors that report a missing resource.
func isNotFound(err error) bool {
	var nf interface{ NotFound() bool }
	return errors.As(err, &nf) && nf.NotFound()
}
