package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventoryapi/models"
)

// noticeTTL is how long success notices stay up before auto-dismiss.
const noticeTTL = 5 * time.Second

// Notice is a dismissable banner. Success notices carry an expiry;
// error notices stay until dismissed.
type Notice struct {
	Message   string
	ExpiresAt time.Time
}

func (n Notice) AutoDismiss() bool {
	return !n.ExpiresAt.IsZero()
}

func successNotice(message string) Notice {
	return Notice{Message: message, ExpiresAt: time.Now().Add(noticeTTL)}
}

// ErrorNotice builds the banner for a failed mutation, preferring the
// server's human-readable message.
func ErrorNotice(err error, fallback string) Notice {
	return Notice{Message: UserMessage(err, fallback)}
}

// UserMessage extracts the message to show the user for an error.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	return fallback
}

// Deleter sequences delete requests and turns their outcome into user
// notices. Both paths invalidate the cached product list exactly once
// per operation so the derived views recompute against fresh data.
type Deleter struct {
	Client *Client
}

func NewDeleter(c *Client) *Deleter {
	return &Deleter{Client: c}
}

// DeleteOne deletes a single confirmed product. The returned notice
// is the banner to show: auto-dismissing on success, sticky on error.
func (d *Deleter) DeleteOne(ctx context.Context, product models.Product) (Notice, error) {
	err := d.Client.deleteRequest(ctx, product.Id)
	d.Client.Invalidate()

	if err != nil {
		return ErrorNotice(err, "Failed to delete product"), err
	}

	return successNotice(fmt.Sprintf("Product %q deleted successfully!", product.ProductName)), nil
}

// DeleteMany deletes the confirmed selection sequentially, in the
// set's iteration order, stopping at the first failure. Items deleted
// before the failure stay deleted; the returned slice says exactly
// which. Requests are deliberately not issued concurrently: one
// in-flight delete at a time is what makes the failure attributable
// to a specific product.
func (d *Deleter) DeleteMany(ctx context.Context, ids []int) ([]int, Notice, error) {
	var deleted []int

	for _, id := range ids {
		if err := d.Client.deleteRequest(ctx, id); err != nil {
			d.Client.Invalidate()
			return deleted, ErrorNotice(err, "Failed to delete products"), err
		}
		deleted = append(deleted, id)
	}

	d.Client.Invalidate()
	return deleted, successNotice(fmt.Sprintf("%d product(s) deleted successfully!", len(deleted))), nil
}
