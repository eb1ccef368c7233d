package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

// OrderCreator submits an order to the backend.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req orders.CreateRequest) (orders.Order, error)
}

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(n view.Notice)
}

type nopNotifier struct{}

func (nopNotifier) Notify(view.Notice) {}

const genericOrderFailure = "We couldn't place your order. Please try again."

// Flow is one shopper's checkout wizard. It reads the cart on every call
// and never caches totals.
type Flow struct {
	cart     *cart.Store
	calc     Calculator
	creator  OrderCreator
	notifier Notifier
	numbers  *NumberGenerator
	log      *slog.Logger

	mu         sync.Mutex
	step       Step
	billing    BillingInfo
	delivery   string
	payment    string
	order      *orders.Order
	submitting bool
}

type Option func(*Flow)

func WithCalculator(c Calculator) Option     { return func(f *Flow) { f.calc = c } }
func WithNotifier(n Notifier) Option         { return func(f *Flow) { f.notifier = n } }
func WithLogger(l *slog.Logger) Option       { return func(f *Flow) { f.log = l } }
func WithNumbers(g *NumberGenerator) Option  { return func(f *Flow) { f.numbers = g } }
func WithOrderCreator(c OrderCreator) Option { return func(f *Flow) { f.creator = c } }

func NewFlow(c *cart.Store, opts ...Option) *Flow {
	f := &Flow{
		cart:     c,
		calc:     DefaultPricing(),
		notifier: nopNotifier{},
		numbers:  NewNumberGenerator(),
		log:      slog.Default(),
		step:     StepBilling,
		delivery: orders.DeliveryHome,
		payment:  orders.PaymentCard,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// State is a consistent read of the wizard and its totals.
type State struct {
	Step           Step
	Billing        BillingInfo
	DeliveryOption string
	PaymentMethod  string
	Submitting     bool
	Complete       bool
	Order          *orders.Order
	HasEyeglasses  bool
	Totals         Totals
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := State{
		Step:           f.step,
		Billing:        f.billing,
		DeliveryOption: f.delivery,
		PaymentMethod:  f.payment,
		Submitting:     f.submitting,
		Complete:       f.completeLocked(),
		HasEyeglasses:  f.cart.HasEyeglasses(),
		Totals:         f.calc.Quote(f.cart, f.delivery),
	}
	if f.order != nil {
		o := *f.order
		st.Order = &o
	}
	return st
}

func (f *Flow) Totals() Totals {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calc.Quote(f.cart, f.delivery)
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Complete reports the terminal state: confirmation with a created order.
func (f *Flow) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completeLocked()
}

func (f *Flow) completeLocked() bool {
	return f.step == StepConfirmation && f.order != nil
}

func (f *Flow) SetBilling(b BillingInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.mutableLocked(); err != nil {
		return err
	}
	f.billing = b.Normalize()
	return nil
}

// SeedBilling fills empty billing fields from profile defaults.
func (f *Flow) SeedBilling(defaults BillingInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.order != nil {
		return
	}
	f.billing = f.billing.Merge(defaults.Normalize())
}

func (f *Flow) SetDelivery(option string) error {
	if option != orders.DeliveryHome && option != orders.DeliveryPickup {
		return fmt.Errorf("%w: %q", ErrInvalidDelivery, option)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.mutableLocked(); err != nil {
		return err
	}
	f.delivery = option
	return nil
}

func (f *Flow) SetPayment(method string) error {
	if method != orders.PaymentCard && method != orders.PaymentCash {
		return fmt.Errorf("%w: %q", ErrInvalidPayment, method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.mutableLocked(); err != nil {
		return err
	}
	f.payment = method
	return nil
}

func (f *Flow) mutableLocked() error {
	if f.order != nil {
		return ErrAlreadyComplete
	}
	if f.submitting {
		return ErrSubmissionInFlight
	}
	return nil
}

func (f *Flow) conditionsLocked() Conditions {
	c := Conditions{Billing: f.billing, HasEyeglasses: f.cart.HasEyeglasses()}
	for _, it := range f.cart.MissingLenses() {
		c.MissingLenses = append(c.MissingLenses, it.Product.Name)
	}
	return c
}

// Next advances from the step the caller saw. A stale from (the wizard
// already moved) is a no-op returning the current step; zero means current.
func (f *Flow) Next(from Step) (Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if from != 0 && from != f.step {
		return f.step, nil
	}
	if f.submitting {
		return f.step, ErrSubmissionInFlight
	}
	if f.cart.IsEmpty() && f.order == nil {
		return f.step, ErrEmptyCart
	}
	to, err := Next(f.step, f.conditionsLocked())
	if err != nil {
		return f.step, err
	}
	f.step = to
	return to, nil
}

func (f *Flow) Prev() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting || f.order != nil {
		return f.step
	}
	f.step = Prev(f.step, f.cart.HasEyeglasses())
	return f.step
}

// Reset starts a fresh checkout.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepBilling
	f.order = nil
	f.submitting = false
	f.delivery = orders.DeliveryHome
	f.payment = orders.PaymentCard
}

// HandlePaymentSuccess submits the order once payment is confirmed. On
// failure the wizard is left as it was. The cart is not cleared.
// Cancelling ctx does not abort the backend call; the client timeout bounds it.
func (f *Flow) HandlePaymentSuccess(ctx context.Context, paymentID string, userID *int64) (orders.Order, error) {
	req, err := f.beginSubmit(userID)
	if err != nil {
		return orders.Order{}, err
	}
	f.log.Info("order_submit", "order_number", req.OrderNumber, "payment_id", paymentID, "items", len(req.Items), "total", req.TotalPrice)

	created, err := f.creator.CreateOrder(context.WithoutCancel(ctx), req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.log.Warn("order_submit_failed", "order_number", req.OrderNumber, "err", err)
		f.notifier.Notify(view.Notice{Kind: view.NoticeError, Title: "Order Failed", Message: userMessage(err)})
		return orders.Order{}, err
	}

	if created.Number == "" {
		created.Number = req.OrderNumber
	}
	f.order = &created
	f.step = StepConfirmation
	f.notifier.Notify(view.Notice{
		Kind:    view.NoticeSuccess,
		Title:   "Order Placed Successfully",
		Message: fmt.Sprintf("Your order #%s has been received. Confirmation sent to %s.", created.Number, req.Billing.Email),
	})
	f.log.Info("order_created", "order_number", created.Number, "client_order_number", req.OrderNumber)
	return created, nil
}

func (f *Flow) beginSubmit(userID *int64) (orders.CreateRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return orders.CreateRequest{}, ErrSubmissionInFlight
	}
	if f.order != nil {
		return orders.CreateRequest{}, ErrAlreadyComplete
	}
	items := f.cart.Items()
	if len(items) == 0 {
		return orders.CreateRequest{}, ErrEmptyCart
	}
	if f.step != StepPayment && f.step != StepConfirmation {
		return orders.CreateRequest{}, ErrPaymentNotReady
	}
	if f.creator == nil {
		return orders.CreateRequest{}, errors.New("checkout: no order creator configured")
	}

	cond := f.conditionsLocked()
	if missing := cond.Billing.Validate(); len(missing) > 0 {
		return orders.CreateRequest{}, &ValidationError{Step: StepBilling, Fields: missing, Message: "Please fill in all required billing fields"}
	}
	if len(cond.MissingLenses) > 0 {
		_, err := Next(StepLens, cond)
		return orders.CreateRequest{}, err
	}

	totals := f.calc.QuoteItems(items, f.delivery)
	req := BuildPayload(PayloadInput{
		OrderNumber:    f.numbers.Next(),
		UserID:         userID,
		Items:          items,
		Billing:        f.billing,
		PaymentMethod:  f.payment,
		DeliveryOption: f.delivery,
		Total:          totals.Total,
	})
	f.submitting = true
	return req, nil
}

func userMessage(err error) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return genericOrderFailure
}
