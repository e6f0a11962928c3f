package api

import "time"

// Wire types for the backend contracts. Prices and totals are integer
// kopecks on the wire.

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	VIN         string `json:"vin"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price"`
	ImageURL    string `json:"image"`
	Model       string `json:"model"`
	InStock     bool   `json:"inStock"`
	Description string `json:"description"`
}

type Order struct {
	ID            int64       `json:"id"`
	OrderNumber   string      `json:"order_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	TotalCents    int64       `json:"total_amount"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductName  string `json:"product_name"`
	ProductVIN   string `json:"product_vin"`
	ProductModel string `json:"product_model"`
	PriceCents   int64  `json:"price"`
	Quantity     int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	TotalCents    int64       `json:"total_amount"`
}
