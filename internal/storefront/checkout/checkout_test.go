package checkout

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/cart"
)

type fakeCreator struct {
	calls   atomic.Int32
	lastReq api.CreateOrderRequest
	number  string
	err     error
	block   chan struct{} // when set, CreateOrder waits until closed
}

func (f *fakeCreator) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (string, error) {
	f.lastReq = req
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return "", f.err
	}
	return f.number, nil
}

func filledCart() *cart.Cart {
	c := cart.New()
	c.Add(api.Product{ID: 1, Name: "brake pad", VIN: "V1", Model: "Porter 1", PriceCents: 100000})
	c.Add(api.Product{ID: 1, Name: "brake pad", VIN: "V1", Model: "Porter 1", PriceCents: 100000})
	c.Add(api.Product{ID: 2, Name: "oil filter", VIN: "V2", Model: "Kia Bongo", PriceCents: 45000})
	return c
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		form      Form
		emptyCart bool
		wantField string
	}{
		{name: "empty name", form: Form{Phone: "+7 900 000-00-00"}, wantField: "name"},
		{name: "empty phone", form: Form{Name: "Ivan"}, wantField: "phone"},
		{name: "empty cart", form: Form{Name: "Ivan", Phone: "+7"}, emptyCart: true, wantField: "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCreator{number: "A100"}
			s := New(client)

			crt := filledCart()
			if tt.emptyCart {
				crt = cart.New()
			}
			before := crt.ItemCount()

			_, err := s.Submit(context.Background(), tt.form, crt)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.wantField)
			assert.Zero(t, client.calls.Load(), "no request may be issued on validation failure")
			assert.Equal(t, before, crt.ItemCount(), "cart must be unchanged")
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	client := &fakeCreator{number: "A100"}
	s := New(client)
	s.Begin()
	crt := filledCart()

	number, err := s.Submit(context.Background(), Form{Name: "Ivan", Phone: "+7 900", Email: "i@example.com"}, crt)
	require.NoError(t, err)
	assert.Equal(t, "A100", number)

	// payload shape
	req := client.lastReq
	assert.Equal(t, "Ivan", req.CustomerName)
	assert.Equal(t, "+7 900", req.CustomerPhone)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "brake pad", req.Items[0].ProductName)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.Equal(t, int64(2*100000+45000), req.TotalCents)

	// cart cleared, form reset, back to the cart view
	assert.Zero(t, crt.ItemCount())
	assert.Equal(t, Form{}, s.Form())
	assert.Equal(t, PhaseBrowsingCart, s.Phase())
}

func TestSubmitBackendRejection(t *testing.T) {
	client := &fakeCreator{err: &api.RequestError{StatusCode: 500, Body: "boom"}}
	s := New(client)
	s.Begin()
	crt := filledCart()

	_, err := s.Submit(context.Background(), Form{Name: "Ivan", Phone: "+7"}, crt)

	var re *api.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 3, crt.ItemCount(), "cart must survive a rejected submission")
	assert.Equal(t, PhaseEnteringDetails, s.Phase(), "state must be left for a retry")
}

func TestSubmitInFlightGuard(t *testing.T) {
	client := &fakeCreator{number: "A100", block: make(chan struct{})}
	s := New(client)
	crt := filledCart()

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), Form{Name: "Ivan", Phone: "+7"}, crt)
		done <- err
	}()

	// wait until the first submit is inside the client call
	require.Eventually(t, func() bool { return client.calls.Load() == 1 }, time.Second, time.Millisecond)

	_, err := s.Submit(context.Background(), Form{Name: "Ivan", Phone: "+7"}, crt)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, int32(1), client.calls.Load(), "second submit must not reach the backend")

	close(client.block)
	require.NoError(t, <-done)
}

func TestPhaseNavigation(t *testing.T) {
	s := New(&fakeCreator{})
	assert.Equal(t, PhaseBrowsingCart, s.Phase())

	s.Begin()
	assert.Equal(t, PhaseEnteringDetails, s.Phase())

	s.Back()
	assert.Equal(t, PhaseBrowsingCart, s.Phase())
}
