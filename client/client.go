// Package client implements the admin table client: a cached product
// list with mark-stale invalidation, search with autocomplete,
// pagination, a selection set, the sequential delete orchestrator and
// CSV export. State transitions are pure recomputations driven by a
// single event loop, so nothing here takes a lock.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	"inventoryapi/models"
)

// APIError mirrors the server's ErrorResponse body.
type APIError struct {
	StatusCode       int                 `json:"statusCode"`
	ErrorCode        string              `json:"errorCode"`
	Message          string              `json:"message"`
	ValidationErrors map[string][]string `json:"validationErrors"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	products []models.Product
	stale    bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		stale:      true,
	}
}

// Products returns the cached list, refetching only when a mutation
// marked it stale. The cached copy is read-only; the server owns the
// authoritative state.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	if !c.stale {
		return c.products, nil
	}

	var products []models.Product
	if err := c.get(ctx, "/api/Products", &products); err != nil {
		return nil, err
	}

	c.products = products
	c.stale = false
	return products, nil
}

// Invalidate marks the cached list stale; the next Products call
// refetches from the server.
func (c *Client) Invalidate() {
	c.stale = true
}

func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/api/Products/"+strconv.Itoa(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/api/Products/category/"+category, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) TopCustomers(ctx context.Context, count int) ([]models.CustomerOrderSummary, error) {
	var customers []models.CustomerOrderSummary
	if err := c.get(ctx, fmt.Sprintf("/api/Customers/top?count=%d", count), &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.send(ctx, http.MethodPost, "/api/Products", product, &created); err != nil {
		return nil, err
	}

	c.Invalidate()
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, product models.Product) (*models.Product, error) {
	var updated models.Product
	if err := c.send(ctx, http.MethodPut, "/api/Products/"+strconv.Itoa(id), product, &updated); err != nil {
		return nil, err
	}

	c.Invalidate()
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	if err := c.deleteRequest(ctx, id); err != nil {
		return err
	}

	c.Invalidate()
	return nil
}

// deleteRequest issues the delete without touching the cache; the
// delete orchestrator invalidates once per operation instead.
func (c *Client) deleteRequest(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/api/Products/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeAPIError turns a failed response into an *APIError. A body
// that is not a valid error payload still yields a usable error from
// the HTTP status alone.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := ioutil.ReadAll(resp.Body)
	if err == nil {
		_ = json.Unmarshal(body, apiErr)
	}

	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}

	apiErr.StatusCode = resp.StatusCode
	return apiErr
}
