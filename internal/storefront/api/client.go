package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestError is a response the backend did answer, just not with 2xx.
// Transport-level failures (no response at all) come back as the plain
// error from net/http, so callers can tell the two apart with errors.As.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// Client talks to the three backend contracts: product search, order
// creation, order listing/status update.
type Client struct {
	baseURL    string
	adminToken string
	httpc      *http.Client
}

func New(baseURL, adminToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpc:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SearchProducts(ctx context.Context, query, model string) ([]Product, error) {
	q := url.Values{}
	if strings.TrimSpace(query) != "" {
		q.Set("search", query)
	}
	if model != "" && model != "all" {
		q.Set("model", model)
	}

	path := "/api/products"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (string, error) {
	var out struct {
		OrderNumber string `json:"order_number"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out, false); err != nil {
		return "", err
	}
	return out.OrderNumber, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	body := map[string]any{"order_id": orderID, "status": status}
	return c.do(ctx, http.MethodPut, "/api/admin/orders", body, nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, admin bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin && c.adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.adminToken)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
