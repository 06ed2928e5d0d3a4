package models

import "time"

type Product struct {
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Id              int       `json:"id"`
	ProductName     string    `json:"productName"`
	Category        string    `json:"category"`
	Supplier        string    `json:"supplier"`
	QuantityPerUnit string    `json:"quantityPerUnit,omitempty"`
	UnitPrice       float64   `json:"unitPrice"`
	Units           int       `json:"units"`
}
