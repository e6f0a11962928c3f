package orders

import "time"

// Order lifecycle statuses. Transitions are free within the enum; the
// admin console drives them and the server only guards against unknown
// values.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Order struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber   string    `gorm:"column:order_number;size:32;uniqueIndex;not null" json:"order_number"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:64;not null" json:"customer_phone"`
	CustomerEmail string    `gorm:"size:255" json:"customer_email"`
	TotalCents    int64     `gorm:"column:total_cents;not null" json:"total_amount"`
	Status        string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is a snapshot of the product at order time; later catalog
// edits must not rewrite history.
type OrderItem struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID      int64  `gorm:"column:order_id;index;not null" json:"-"`
	ProductName  string `gorm:"size:255;not null" json:"product_name"`
	ProductVIN   string `gorm:"column:product_vin;size:64;not null" json:"product_vin"`
	ProductModel string `gorm:"size:50;not null" json:"product_model"`
	PriceCents   int64  `gorm:"column:price_cents;not null" json:"price"`
	Quantity     int    `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string { return "order_items" }

func KnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
