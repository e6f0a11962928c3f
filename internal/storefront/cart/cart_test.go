package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
)

func product(id int64, name string, priceCents int64) api.Product {
	return api.Product{
		ID:         id,
		Name:       name,
		VIN:        "VIN-" + name,
		Model:      "Porter 1",
		PriceCents: priceCents,
	}
}

func TestAddDistinctProducts(t *testing.T) {
	c := New()
	c.Add(product(1, "brake pad", 150000))
	c.Add(product(2, "oil filter", 45000))
	c.Add(product(3, "clutch kit", 890000))

	assert.Equal(t, 3, c.ItemCount())
	assert.Len(t, c.Lines(), 3)
}

func TestAddSameProductTwice(t *testing.T) {
	c := New()
	c.Add(product(1, "brake pad", 100000))
	c.Add(product(1, "brake pad", 100000))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(200000), c.TotalCents())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(product(3, "clutch kit", 1))
	c.Add(product(1, "brake pad", 1))
	c.Add(product(2, "oil filter", 1))
	c.Add(product(1, "brake pad", 1)) // repeat must not reorder

	var ids []int64
	for _, l := range c.Lines() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name string
		fill func(c *Cart)
		want int64
	}{
		{
			name: "empty cart totals zero",
			fill: func(c *Cart) {},
			want: 0,
		},
		{
			name: "sum of price times quantity",
			fill: func(c *Cart) {
				c.Add(product(1, "a", 150000))
				c.Add(product(2, "b", 45000))
				c.SetQuantity(2, 3)
			},
			want: 150000 + 3*45000,
		},
		{
			name: "remove drops the line from the total",
			fill: func(c *Cart) {
				c.Add(product(1, "a", 150000))
				c.Add(product(2, "b", 45000))
				c.Remove(1)
			},
			want: 45000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.fill(c)
			assert.Equal(t, tt.want, c.TotalCents())
		})
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(product(1, "a", 1000))

	c.SetQuantity(1, 5)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	// floored at 1, never zero
	c.SetQuantity(1, 0)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	// absent id is a no-op
	c.SetQuantity(99, 7)
	assert.Len(t, c.Lines(), 1)
}

func TestDecrementClampsAtOne(t *testing.T) {
	c := New()
	c.Add(product(1, "a", 1000))
	c.SetQuantity(1, 2)

	c.Decrement(1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)

	c.Decrement(1)
	c.Decrement(1)
	assert.Equal(t, 1, c.Lines()[0].Quantity, "decrement path must never reach zero")
	assert.Equal(t, 1, c.ItemCount())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, "a", 1000))
	c.Remove(42)
	assert.Len(t, c.Lines(), 1)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(product(1, "a", 1000))
	c.Add(product(2, "b", 2000))

	c.Clear()

	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, int64(0), c.TotalCents())
	assert.Empty(t, c.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(product(1, "a", 1000))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestConcurrentMutation(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				c.Add(product(1, "a", 1000))
			}
		}()
	}
	wg.Wait()

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 100, c.ItemCount())
	assert.Equal(t, int64(100*1000), c.TotalCents())
}
