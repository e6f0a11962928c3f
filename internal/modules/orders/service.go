package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Items         []OrderItem
	TotalCents    int64
}

// Create persists a new pending order and returns it with the generated
// order number. Same-second submissions collide on the number's unique
// index; the retry appends a short random suffix.
func (s *Service) Create(ctx context.Context, in CreateInput) (Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return Order{}, ErrMissingCustomer
	}
	if len(in.Items) == 0 {
		return Order{}, ErrNoItems
	}

	o := Order{
		OrderNumber:   orderNumber(s.now()),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		TotalCents:    in.TotalCents,
		Status:        StatusPending,
		Items:         in.Items,
	}

	err := s.repo.Create(ctx, &o)
	if IsDuplicateKey(err) {
		o.ID = 0
		o.OrderNumber = orderNumber(s.now()) + "-" + randSuffix()
		err = s.repo.Create(ctx, &o)
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if !KnownStatus(status) {
		return ErrUnknownStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

func orderNumber(t time.Time) string {
	return "ORD-" + t.Format("20060102150405")
}

func randSuffix() string {
	return uuid.NewString()[:4]
}
