package models

import "time"

// CustomerOrderSummary is a read-only projection of a customer and
// their order totals. Rows are derived by the store, never mutated
// through this API.
type CustomerOrderSummary struct {
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
	Id            int        `json:"id"`
	CustomerName  string     `json:"customerName"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	OrderCount    int        `json:"orderCount"`
	TotalSpent    float64    `json:"totalSpent"`
}
