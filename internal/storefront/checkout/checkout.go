package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/cart"
)

// Phase is the checkout sheet's position: looking at the cart, or filling
// in customer details. Transitions are explicit user navigation and never
// touch the network.
type Phase string

const (
	PhaseBrowsingCart    Phase = "browsing-cart"
	PhaseEnteringDetails Phase = "entering-details"
)

var ErrSubmitInFlight = errors.New("submission already in flight")

// Form carries the customer fields. Email is genuinely optional; no
// format check, matching the intake contract.
type Form struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email"`
}

// ValidationError blocks submission before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed: %v", e.Fields)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (string, error)
}

// Checkout drives one visitor's submission flow. The in-flight flag is
// the only guard against duplicate concurrent submits; the payload
// carries no idempotency token.
type Checkout struct {
	client   OrderCreator
	validate *validator.Validate

	mu       sync.Mutex
	phase    Phase
	form     Form
	inFlight bool
}

func New(client OrderCreator) *Checkout {
	return &Checkout{
		client:   client,
		validate: validator.New(),
		phase:    PhaseBrowsingCart,
	}
}

func (s *Checkout) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Checkout) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Begin moves from the cart view to the details form.
func (s *Checkout) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseEnteringDetails
}

// Back returns to the cart view; entered fields are kept for a retry.
func (s *Checkout) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseBrowsingCart
}

// Submit validates the form, ships the order and on success empties the
// cart, resets the form and drops back to the cart view. On any failure
// cart and form stay untouched so the visitor can retry.
func (s *Checkout) Submit(ctx context.Context, form Form, crt *cart.Cart) (string, error) {
	if fields := s.check(form, crt); len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	s.inFlight = true
	s.form = form
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	orderNumber, err := s.client.CreateOrder(ctx, buildRequest(form, crt))
	if err != nil {
		return "", err
	}

	crt.Clear()

	s.mu.Lock()
	s.form = Form{}
	s.phase = PhaseBrowsingCart
	s.mu.Unlock()

	return orderNumber, nil
}

func (s *Checkout) check(form Form, crt *cart.Cart) map[string]string {
	fields := map[string]string{}

	var ve validator.ValidationErrors
	if err := s.validate.Struct(form); errors.As(err, &ve) {
		for _, fe := range ve {
			switch fe.StructField() {
			case "Name":
				fields["name"] = "Name is required."
			case "Phone":
				fields["phone"] = "Phone is required."
			}
		}
	}
	if crt.ItemCount() == 0 {
		fields["items"] = "Cart is empty."
	}
	return fields
}

func buildRequest(form Form, crt *cart.Cart) api.CreateOrderRequest {
	lines := crt.Lines()
	items := make([]api.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, api.OrderItem{
			ProductName:  l.Name,
			ProductVIN:   l.VIN,
			ProductModel: l.Model,
			PriceCents:   l.PriceCents,
			Quantity:     l.Quantity,
		})
	}
	return api.CreateOrderRequest{
		CustomerName:  form.Name,
		CustomerPhone: form.Phone,
		CustomerEmail: form.Email,
		Items:         items,
		TotalCents:    crt.TotalCents(),
	}
}
