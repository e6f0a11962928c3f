package catalog

import (
	"context"
	"sync"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
)

type Searcher interface {
	SearchProducts(ctx context.Context, query, model string) ([]api.Product, error)
}

// Fetcher owns the displayed product set. Every call re-queries the
// backend and replaces the set wholesale; there is no merging and no
// debounce. Requests are tagged with a monotonic sequence number so a
// slow, superseded response cannot overwrite a newer one.
type Fetcher struct {
	client Searcher

	mu       sync.Mutex
	issued   uint64
	applied  uint64
	products []api.Product
}

func NewFetcher(client Searcher) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch requests products for the search term and model filter and
// returns the displayed set afterwards. A failed request leaves the
// previous set in place; so does a response that lost the race to a
// later one.
func (f *Fetcher) Fetch(ctx context.Context, query, model string) ([]api.Product, error) {
	f.mu.Lock()
	f.issued++
	seq := f.issued
	f.mu.Unlock()

	items, err := f.client.SearchProducts(ctx, query, model)
	if err != nil {
		return f.Products(), err
	}
	if items == nil {
		items = []api.Product{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq > f.applied {
		f.applied = seq
		f.products = items
	}
	return copyProducts(f.products), nil
}

// Products returns the current displayed set.
func (f *Fetcher) Products() []api.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyProducts(f.products)
}

// Find looks a product up in the displayed set; adding to the cart only
// ever draws from what the visitor can see.
func (f *Fetcher) Find(id int64) (api.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, true
		}
	}
	return api.Product{}, false
}

func copyProducts(in []api.Product) []api.Product {
	out := make([]api.Product, len(in))
	copy(out, in)
	return out
}
