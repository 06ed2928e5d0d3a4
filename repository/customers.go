package repository

import (
	"context"
	"database/sql"
	"log"

	"inventoryapi/apperrors"
	"inventoryapi/models"
)

type CustomerRepository struct {
	Db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{Db: db}
}

func (r *CustomerRepository) TopByOrderCount(ctx context.Context, count int) ([]models.CustomerOrderSummary, error) {
	rows, err := r.Db.QueryContext(ctx, `SELECT * FROM get_top_customers_by_order_count($1)`, count)
	if err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while retrieving top customers.", err)
	}

	defer rows.Close()

	var customers []models.CustomerOrderSummary
	for rows.Next() {
		var customer models.CustomerOrderSummary
		var email, phone sql.NullString
		var lastOrder sql.NullTime

		err = rows.Scan(&customer.Id, &customer.CustomerName, &email, &phone,
			&customer.OrderCount, &customer.TotalSpent, &lastOrder)
		if err != nil {
			log.Println(err)
			return nil, apperrors.Database("Database error occurred while reading top customers.", err)
		}

		customer.Email = email.String
		customer.Phone = phone.String
		if lastOrder.Valid {
			t := lastOrder.Time
			customer.LastOrderDate = &t
		}

		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		log.Println(err)
		return nil, apperrors.Database("Database error occurred while reading top customers.", err)
	}

	return customers, nil
}
