package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/handlers"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/orders"
)

type fakeOrdersRepo struct {
	created []orders.Order
	listed  []orders.Order
	err     error
}

func (f *fakeOrdersRepo) Create(ctx context.Context, o *orders.Order) error {
	if f.err != nil {
		return f.err
	}
	o.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *o)
	return nil
}

func (f *fakeOrdersRepo) ListAll(ctx context.Context) ([]orders.Order, error) {
	return f.listed, f.err
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	return f.err
}

const validOrderBody = `{
	"customer_name": "Ivan",
	"customer_phone": "+7 900 000-00-00",
	"customer_email": "ivan@example.com",
	"items": [
		{"product_name": "brake pad", "product_vin": "58101-4F000", "product_model": "Porter 1", "price": 150000, "quantity": 2}
	],
	"total_amount": 300000
}`

func TestOrderCreate(t *testing.T) {
	repo := &fakeOrdersRepo{}
	h := handlers.NewOrdersHandler(orders.NewService(repo))

	r := newTestRouter()
	r.POST("/api/orders", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(validOrderBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success     bool   `json:"success"`
		OrderNumber string `json:"order_number"`
		OrderID     int64  `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.OrderNumber, "ORD-"))
	assert.Equal(t, int64(1), body.OrderID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, orders.StatusPending, repo.created[0].Status)
	require.Len(t, repo.created[0].Items, 1)
	assert.Equal(t, 2, repo.created[0].Items[0].Quantity)
}

func TestOrderCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing customer name",
			body:      `{"customer_phone":"+7","items":[{"product_name":"a","product_vin":"v","product_model":"Porter 1","price":1,"quantity":1}],"total_amount":1}`,
			wantField: "customer_name",
		},
		{
			name:      "missing phone",
			body:      `{"customer_name":"Ivan","items":[{"product_name":"a","product_vin":"v","product_model":"Porter 1","price":1,"quantity":1}],"total_amount":1}`,
			wantField: "customer_phone",
		},
		{
			name:      "empty items",
			body:      `{"customer_name":"Ivan","customer_phone":"+7","items":[],"total_amount":0}`,
			wantField: "items",
		},
		{
			name:      "zero quantity",
			body:      `{"customer_name":"Ivan","customer_phone":"+7","items":[{"product_name":"a","product_vin":"v","product_model":"Porter 1","price":1,"quantity":0}],"total_amount":0}`,
			wantField: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrdersRepo{}
			h := handlers.NewOrdersHandler(orders.NewService(repo))

			r := newTestRouter()
			r.POST("/api/orders", h.Create)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Empty(t, repo.created, "invalid order must not be persisted")

			var body struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, tt.wantField)
		})
	}
}
