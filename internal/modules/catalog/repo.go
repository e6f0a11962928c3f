package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Search(ctx context.Context, p SearchParams) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
}

type SearchParams struct {
	Query    string // free text over name and VIN, case-insensitive
	Model    string // vehicle model, "all" or empty means no filter
	Category string // "all" or empty means no filter
}

type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) Search(ctx context.Context, p SearchParams) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})

	if s := strings.ToLower(strings.TrimSpace(p.Query)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(vin) LIKE ?", like, like)
	}
	if m := strings.TrimSpace(p.Model); m != "" && m != FilterAll {
		q = q.Where("model = ?", m)
	}
	if c := strings.TrimSpace(p.Category); c != "" && c != FilterAll {
		q = q.Where("LOWER(category) = ?", strings.ToLower(c))
	}

	var items []Product
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *GormRepo) Get(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}
