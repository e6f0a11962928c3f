package cart

import (
	"sync"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
)

// Line is one aggregated cart entry: a denormalized product snapshot plus
// the requested quantity. Invariant: quantity >= 1, at most one line per
// product id.
type Line struct {
	ID         int64
	Name       string
	VIN        string
	Model      string
	PriceCents int64
	ImageURL   string
	Quantity   int
}

// Cart holds the visitor's lines in insertion order. It is owned by a
// single session but safe for that session's concurrent requests.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add puts the product into the cart; a repeat add bumps the existing
// line's quantity instead of creating a second line.
func (c *Cart) Add(p api.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:         p.ID,
		Name:       p.Name,
		VIN:        p.VIN,
		Model:      p.Model,
		PriceCents: p.PriceCents,
		ImageURL:   p.ImageURL,
		Quantity:   1,
	})
}

// SetQuantity replaces the quantity of the matching line, floored at 1.
// Absent ids are a no-op; removal is explicit via Remove.
func (c *Cart) SetQuantity(id int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Decrement lowers the quantity by one, clamped at 1. The cart never
// reaches quantity zero through this path.
func (c *Cart) Decrement(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == id {
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			}
			return
		}
	}
}

func (c *Cart) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// TotalCents is the sum of price x quantity over all lines; 0 for an
// empty cart.
func (c *Cart) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var t int64
	for _, l := range c.lines {
		t += l.PriceCents * int64(l.Quantity)
	}
	return t
}

// ItemCount sums quantities (the badge number), not the line count.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy; callers cannot mutate cart state through it.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
