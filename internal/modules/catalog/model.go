package catalog

import "time"

// Vehicle models the catalog is scoped to. "all" is the filter sentinel,
// never a stored value.
const (
	ModelPorter1  = "Porter 1"
	ModelPorter2  = "Porter 2"
	ModelKiaBongo = "Kia Bongo"

	FilterAll = "all"
)

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	VIN         string `gorm:"column:vin;size:64;not null;index" json:"vin"`
	Category    string `gorm:"size:100;not null" json:"category"`
	PriceCents  int64  `gorm:"column:price_cents;not null" json:"price"`
	ImageURL    string `gorm:"column:image_url;size:500" json:"image"`
	Model       string `gorm:"size:50;not null;index" json:"model"`
	InStock     bool   `gorm:"column:in_stock;not null;default:true" json:"inStock"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Product) TableName() string { return "products" }

func KnownModel(m string) bool {
	switch m {
	case ModelPorter1, ModelPorter2, ModelKiaBongo:
		return true
	}
	return false
}
