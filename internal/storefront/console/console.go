package console

import (
	"context"
	"sync"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
)

// FilterAll is the sentinel that turns filtering off.
const FilterAll = "all"

type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
}

// Console is the admin's read/update loop over the order list. The list
// is replaced wholesale on refresh; filters and stats are derived from
// the current snapshot and never cached.
type Console struct {
	client OrdersAPI

	mu     sync.Mutex
	orders []api.Order
}

func New(client OrdersAPI) *Console {
	return &Console{client: client}
}

// Refresh fetches the authoritative list. On failure the previously
// fetched list stays displayed.
func (c *Console) Refresh(ctx context.Context) error {
	items, err := c.client.ListOrders(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []api.Order{}
	}

	c.mu.Lock()
	c.orders = items
	c.mu.Unlock()
	return nil
}

func (c *Console) Orders() []api.Order {
	return c.FilterBy(FilterAll)
}

// FilterBy is a pure predicate over the fetched list; no network call.
// Original ordering is preserved.
func (c *Console) FilterBy(status string) []api.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]api.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if status == FilterAll || status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// UpdateStatus asks the backend for the transition and, when accepted,
// re-fetches the list rather than patching it locally; the console never
// shows a status the server might have rejected.
func (c *Console) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if err := c.client.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// Stats recomputes the counters from the current snapshot on every call.
func (c *Console) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Total: len(c.orders), ByStatus: map[string]int{}}
	for _, o := range c.orders {
		s.ByStatus[o.Status]++
	}
	return s
}
