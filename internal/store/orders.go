package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/ecommerce-api/internal/database"
	"github.com/safar/ecommerce-api/internal/models"
)

// CreateOrder inserts the row as given. It deliberately performs no
// product-existence check and no stock decrement; the referential column
// in the schema is the only guard.
func CreateOrder(ctx context.Context, db *sql.DB, productID int64, quantity int) (*models.Order, error) {
	order := &models.Order{}

	query := `
		INSERT INTO orders (product_id, quantity)
		VALUES ($1, $2)
		RETURNING id, product_id, quantity`

	err := db.QueryRowContext(ctx, query, productID, quantity).Scan(
		&order.ID,
		&order.ProductID,
		&order.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func GetOrder(ctx context.Context, db *sql.DB, id int64) (*models.Order, error) {
	order := &models.Order{}

	query := `
		SELECT id, product_id, quantity
		FROM orders
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.ProductID,
		&order.Quantity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}
