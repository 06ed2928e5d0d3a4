package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"inventoryapi/models"

	"gotest.tools/assert"
)

// fakeAPI is a minimal in-memory stand-in for the server, good enough
// to drive the client's cache and error handling.
type fakeAPI struct {
	products  []models.Product
	blocked   map[int]bool
	listCalls int
	deletes   []int
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/Products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.listCalls++
			_ = json.NewEncoder(w).Encode(f.products)
		case http.MethodPost:
			var p models.Product
			_ = json.NewDecoder(r.Body).Decode(&p)
			p.Id = len(f.products) + 100
			f.products = append(f.products, p)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(p)
		}
	})

	mux.HandleFunc("/api/Products/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/Products/"))

		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}

		if f.blocked[id] {
			writeErrorBody(w, http.StatusConflict, "REFERENTIAL_INTEGRITY_VIOLATION",
				"Product is referenced by existing orders and cannot be deleted.")
			return
		}

		for i, p := range f.products {
			if p.Id == id {
				f.products = append(f.products[:i], f.products[i+1:]...)
				f.deletes = append(f.deletes, id)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		writeErrorBody(w, http.StatusNotFound, "RESOURCE_NOT_FOUND",
			"Product with ID '"+strconv.Itoa(id)+"' was not found.")
	})

	return mux
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Timestamp:  time.Now().UTC(),
		StatusCode: status,
		ErrorCode:  code,
		Message:    message,
	})
}

func newFakeAPI(products ...models.Product) (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{products: products, blocked: map[int]bool{}}
	return api, httptest.NewServer(api.handler())
}

func TestClientCache(t *testing.T) {
	api, srv := newFakeAPI(
		models.Product{Id: 1, ProductName: "Chai"},
		models.Product{Id: 2, ProductName: "Chang"},
	)
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	// first read fetches
	products, err := c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(products))
	assert.Equal(t, 1, api.listCalls)

	// repeat reads are served from the cache
	_, err = c.Products(ctx)
	assert.Equal(t, nil, err)
	_, err = c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, api.listCalls)

	// invalidation forces a refetch on the next read, not immediately
	c.Invalidate()
	assert.Equal(t, 1, api.listCalls)

	products, err = c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(products))
	assert.Equal(t, 2, api.listCalls)
}

func TestClientMutationsInvalidate(t *testing.T) {
	api, srv := newFakeAPI(models.Product{Id: 1, ProductName: "Chai"})
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, api.listCalls)

	created, err := c.CreateProduct(ctx, models.Product{ProductName: "Chang"})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, created.Id > 0)

	// the cached copy was invalidated, so the next read refetches
	products, err := c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(products))
	assert.Equal(t, 2, api.listCalls)

	err = c.DeleteProduct(ctx, 1)
	assert.Equal(t, nil, err)

	products, err = c.Products(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(products))
	assert.Equal(t, 3, api.listCalls)
}

func TestClientAPIError(t *testing.T) {
	api, srv := newFakeAPI()
	defer srv.Close()
	api.blocked[5] = true

	c := New(srv.URL)
	ctx := context.Background()

	// structured error body decodes into APIError
	err := c.DeleteProduct(ctx, 5)
	apiErr, ok := err.(*APIError)
	assert.Equal(t, true, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "REFERENTIAL_INTEGRITY_VIOLATION", apiErr.ErrorCode)
	assert.Equal(t, "Product is referenced by existing orders and cannot be deleted.", apiErr.Message)

	// missing product is a 404 classification, not a generic failure
	err = c.DeleteProduct(ctx, 999)
	apiErr, ok = err.(*APIError)
	assert.Equal(t, true, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "RESOURCE_NOT_FOUND", apiErr.ErrorCode)
}

func TestClientAPIErrorUnparsableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.DeleteProduct(context.Background(), 1)
	apiErr, ok := err.(*APIError)
	assert.Equal(t, true, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, true, apiErr.Message != "")
}
