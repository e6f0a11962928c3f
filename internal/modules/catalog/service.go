package catalog

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Search returns the matching products, name-ordered. A model filter
// outside the known fleet matches nothing and never reaches the
// database; it is not an error.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]Product, error) {
	if m := strings.TrimSpace(p.Model); m != "" && m != FilterAll && !KnownModel(m) {
		return []Product{}, nil
	}
	return s.repo.Search(ctx, p)
}

// Get returns a single product by id, ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}
