package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/ecommerce-api/internal/database"
	"github.com/safar/ecommerce-api/internal/models"
	"github.com/shopspring/decimal"
)

// ProductFields carries every mutable product column; create and update
// both take the full set, an update is a full overwrite.
type ProductFields struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
}

func CreateProduct(ctx context.Context, db *sql.DB, fields ProductFields) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price, stock, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, price, stock, image_url`

	err := db.QueryRowContext(ctx, query,
		fields.Name, fields.Description, fields.Price, fields.Stock, fields.ImageURL).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, db *sql.DB, id int64) (*models.Product, error) {
	product := &models.Product{}

	query := `
		SELECT id, name, description, price, stock, image_url
		FROM products
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListProducts returns up to limit products after skipping skip, ordered
// by id ascending so offset pagination is deterministic.
func ListProducts(ctx context.Context, db *sql.DB, skip, limit int) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, stock, image_url
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}

func UpdateProduct(ctx context.Context, db *sql.DB, id int64, fields ProductFields) (*models.Product, error) {
	product := &models.Product{}

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4, image_url = $5
		WHERE id = $6
		RETURNING id, name, description, price, stock, image_url`

	err := db.QueryRowContext(ctx, query,
		fields.Name, fields.Description, fields.Price, fields.Stock, fields.ImageURL, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

// DeleteProduct reports whether a row was removed; false means the id
// was unknown.
func DeleteProduct(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
