// Package repository executes the store's procedures and translates
// backend-specific failure signals into the apperrors taxonomy.
// Callers never see raw driver errors.
package repository

import (
	"context"
	"database/sql"
	"log"

	"inventoryapi/apperrors"
	"inventoryapi/models"

	"github.com/lib/pq"
)

// SQLSTATEs the delete procedure can signal when a product is still
// referenced: 23503 is the store's own foreign key check, 50001 the
// state reserved by the procedure for its explicit reference check.
const (
	fkViolationState      = "23503"
	refIntegrityState     = "50001"
	deleteBlockedMsg = "Product is referenced by existing orders and cannot be deleted."
)

type ProductRepository struct {
	Db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{Db: db}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, `SELECT * FROM get_all_products()`)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	row := r.Db.QueryRowContext(ctx, `SELECT * FROM get_product_by_id($1)`, id)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while retrieving the product.", err)
	}

	return product, nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.queryProducts(ctx, `SELECT * FROM get_products_by_category($1)`, category)
}

func (r *ProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	row := r.Db.QueryRowContext(ctx,
		`SELECT * FROM insert_product($1, $2, $3, $4, $5, $6)`,
		p.ProductName, p.Category, p.Supplier, nullString(p.QuantityPerUnit), p.UnitPrice, p.Units)

	created, err := scanProduct(row)
	if err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while creating the product.", err)
	}

	return created, nil
}

// Update returns (nil, nil) when no row with that id exists.
func (r *ProductRepository) Update(ctx context.Context, id int, p models.Product) (*models.Product, error) {
	row := r.Db.QueryRowContext(ctx,
		`SELECT * FROM update_product($1, $2, $3, $4, $5, $6, $7)`,
		id, p.ProductName, p.Category, p.Supplier, nullString(p.QuantityPerUnit), p.UnitPrice, p.Units)

	updated, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while updating the product.", err)
	}

	return updated, nil
}

// Delete interprets the procedure's result: zero rows affected means
// the product does not exist, a referential-integrity SQLSTATE means
// the product is still referenced, anything else is a database error.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	var affected int
	err := r.Db.QueryRowContext(ctx, `SELECT delete_product($1)`, id).Scan(&affected)

	if pqErr, ok := err.(*pq.Error); ok {
		if string(pqErr.Code) == fkViolationState || string(pqErr.Code) == refIntegrityState {
			log.Println("delete blocked:", pqErr.Message)
			msg := pqErr.Message
			if msg == "" {
				msg = deleteBlockedMsg
			}
			return apperrors.ReferentialIntegrity(msg)
		}

		log.Println(pqErr)
		return apperrors.Database("Database error occurred while deleting the product.", pqErr)
	}

	if err != nil {
		log.Println(err)
		return apperrors.Database("Database error occurred while deleting the product.", err)
	}

	if affected == 0 {
		return apperrors.NotFound("Product", id)
	}

	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, q string, args ...interface{}) ([]models.Product, error) {
	rows, err := r.Db.QueryContext(ctx, q, args...)
	if err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while retrieving products.", err)
	}

	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Println(err)
			return nil, apperrors.Database("Database error occurred while reading products.", err)
		}

		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while reading products.", err)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var quantityPerUnit sql.NullString

	err := row.Scan(&product.Id, &product.ProductName, &product.Category,
		&product.Supplier, &quantityPerUnit, &product.UnitPrice, &product.Units,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	product.QuantityPerUnit = quantityPerUnit.String

	return &product, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
