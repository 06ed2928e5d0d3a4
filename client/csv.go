package client

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"inventoryapi/models"
)

// ErrNoProducts is returned by WriteCSV for an empty set; the caller
// must not produce a file.
var ErrNoProducts = errors.New("no products to export")

var csvHeader = []string{
	"ID", "Product Name", "Category", "Supplier", "Quantity Per Unit",
	"Unit Price", "Units in Stock", "Created At", "Updated At",
}

// WriteCSV serializes the given products, one row each, quoting any
// field containing a comma, quote or newline with inner quotes
// doubled. Nothing is written when the set is empty.
func WriteCSV(w io.Writer, products []models.Product, includeHeader bool) error {
	if len(products) == 0 {
		return ErrNoProducts
	}

	cw := csv.NewWriter(w)

	if includeHeader {
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
	}

	for _, product := range products {
		row := []string{
			strconv.Itoa(product.Id),
			product.ProductName,
			product.Category,
			product.Supplier,
			product.QuantityPerUnit,
			fmt.Sprintf("%.2f", product.UnitPrice),
			strconv.Itoa(product.Units),
			localTimestamp(product.CreatedAt),
			localTimestamp(product.UpdatedAt),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFilename embeds the export date in the download name.
func CSVFilename(base string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", base, now.Format("2006-01-02"))
}

func localTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
