package handlers

import (
	"time"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

// Presenter turns domain state into view models.
type Presenter struct {
	Currency string
	Pricing  checkout.Calculator
}

func NewPresenter(currency string, pricing checkout.Calculator) *Presenter {
	if currency == "" {
		currency = view.DefaultCurrency
	}
	return &Presenter{Currency: currency, Pricing: pricing}
}

func (p *Presenter) ProductCard(pr catalog.Product) view.ProductCard {
	return view.ProductCard{
		ID:             pr.ID,
		Name:           pr.Name,
		Description:    pr.Description,
		Price:          view.Money(pr.Price, p.Currency),
		PriceValue:     pr.Price.String(),
		Category:       pr.Category.Name,
		FrameType:      pr.FrameType.Name,
		FrameMaterial:  pr.FrameMaterial,
		FaceShapes:     pr.FaceShapes,
		VisionProblems: pr.VisionProblems,
		ImageURL:       pr.PrimaryImage(),
		InStock:        pr.InStock(),
	}
}

func (p *Presenter) CatalogPage(f catalog.Filters, products []catalog.Product) view.CatalogPage {
	cards := make([]view.ProductCard, 0, len(products))
	for _, pr := range products {
		cards = append(cards, p.ProductCard(pr))
	}
	return view.CatalogPage{
		Filters:          f,
		HasActiveFilters: f.HasActive(),
		Total:            len(cards),
		Products:         cards,
	}
}

func (p *Presenter) CartLine(it cart.Item) view.CartLine {
	line := view.CartLine{
		ProductID:   it.Product.ID,
		ProductName: it.Product.Name,
		Category:    it.Product.Category.Name,
		ImageURL:    it.Product.PrimaryImage(),
		Qty:         it.Quantity,
		UnitPrice:   view.Money(it.Product.Price, p.Currency),
		LineTotal:   view.Money(it.LineTotal().Add(it.LensLineTotal()), p.Currency),
		NeedsLens:   it.Product.IsEyeglasses() && it.LensOption == nil,
	}
	if lo := it.LensOption; lo != nil {
		line.Lens = &view.Lens{
			Type:           string(lo.Type),
			Option:         lo.Option,
			Price:          view.Money(lo.Price, p.Currency),
			PrescriptionID: lo.PrescriptionID,
		}
	}
	return line
}

func (p *Presenter) Summary(t checkout.Totals, delivery string) view.Summary {
	d := t.Display()
	return view.Summary{
		Currency:       p.Currency,
		DeliveryOption: delivery,
		CartTotal:      view.Money(d.CartTotal, p.Currency),
		LensTotal:      view.Money(d.LensTotal, p.Currency),
		Subtotal:       view.Money(d.Subtotal, p.Currency),
		Shipping:       view.Money(d.Shipping, p.Currency),
		Tax:            view.Money(d.Tax, p.Currency),
		Total:          view.Money(d.Total, p.Currency),
		TotalValue:     t.Total.String(),
	}
}

func (p *Presenter) CartPage(items []cart.Item, delivery string) view.CartPage {
	lines := make([]view.CartLine, 0, len(items))
	page := view.CartPage{Summary: p.Summary(p.Pricing.QuoteItems(items, delivery), delivery)}
	for _, it := range items {
		lines = append(lines, p.CartLine(it))
		page.Count += it.Quantity
		page.HasEyeglasses = page.HasEyeglasses || it.Product.IsEyeglasses()
		if it.LensOption != nil && it.LensOption.Type == cart.LensPrescription {
			page.HasPrescriptionLenses = true
		}
	}
	page.Items = lines
	return page
}

func (p *Presenter) CheckoutPage(st checkout.State, items []cart.Item) view.CheckoutPage {
	path := checkout.Path(st.HasEyeglasses)
	steps := make([]view.CheckoutStep, 0, len(path))
	for _, s := range path {
		steps = append(steps, view.CheckoutStep{
			Number: int(s),
			Label:  s.Label(),
			Done:   s < st.Step || st.Complete,
		})
	}

	page := view.CheckoutPage{
		Step:           int(st.Step),
		StepLabel:      st.Step.Label(),
		Steps:          steps,
		HasEyeglasses:  st.HasEyeglasses,
		Billing:        st.Billing,
		DeliveryOption: st.DeliveryOption,
		PaymentMethod:  st.PaymentMethod,
		Submitting:     st.Submitting,
		Complete:       st.Complete,
		Summary:        p.Summary(st.Totals, st.DeliveryOption),
	}
	if st.Order != nil {
		page.OrderNumber = st.Order.Number
	}
	for _, it := range items {
		if it.Product.IsEyeglasses() {
			page.LensItems = append(page.LensItems, p.CartLine(it))
		}
	}
	return page
}

func (p *Presenter) LensChoices(choices []cart.LensChoice) []view.LensChoice {
	out := make([]view.LensChoice, 0, len(choices))
	for _, c := range choices {
		out = append(out, view.LensChoice{
			ID:          c.ID,
			Name:        c.Name,
			Type:        string(c.Type),
			Price:       view.Money(c.Price, p.Currency),
			Description: c.Description,
		})
	}
	return out
}

func (p *Presenter) OrderListItem(o orders.Order, pending orders.Status) view.OrderListItem {
	item := view.OrderListItem{
		Number:         o.Number,
		Status:         string(o.Status),
		StatusLabel:    o.Status.Label(),
		PendingStatus:  string(pending),
		Total:          view.Money(o.TotalPrice, p.Currency),
		PaymentMethod:  view.PaymentMethodLabel(o.PaymentMethod),
		DeliveryOption: view.DeliveryLabel(o.DeliveryOption),
		ItemCount:      o.ItemCount(),
		Customer:       o.Billing.Name,
	}
	if !o.CreatedAt.IsZero() {
		item.CreatedAt = o.CreatedAt.Format(time.RFC3339)
	}
	if o.DeliveryPerson != nil {
		item.DeliveryPerson = o.DeliveryPerson.Name
	}
	return item
}

func (p *Presenter) OrderList(list []orders.Order) []view.OrderListItem {
	out := make([]view.OrderListItem, 0, len(list))
	for _, o := range list {
		out = append(out, p.OrderListItem(o, ""))
	}
	return out
}

func (p *Presenter) BoardList(list []orders.BoardOrder) []view.OrderListItem {
	out := make([]view.OrderListItem, 0, len(list))
	for _, bo := range list {
		out = append(out, p.OrderListItem(bo.Order, bo.Pending))
	}
	return out
}

func (p *Presenter) OrderDetail(o orders.Order) view.OrderDetail {
	items := make([]view.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		vi := view.OrderItem{
			ProductID:   it.ProductRef(),
			ProductName: it.ProductName,
			Qty:         it.Quantity,
			PriceEach:   view.Money(it.Price, p.Currency),
		}
		if it.LensOption != nil {
			vi.Lens = it.LensOption.Option
		}
		items = append(items, vi)
	}
	return view.OrderDetail{
		OrderListItem: p.OrderListItem(o, ""),
		Items:         items,
		Billing:       o.Billing,
	}
}
