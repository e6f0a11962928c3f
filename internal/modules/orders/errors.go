package orders

import "errors"

var (
	ErrMissingCustomer = errors.New("customer name and phone are required")
	ErrNoItems         = errors.New("order has no items")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrNotFound        = errors.New("order not found")
)
