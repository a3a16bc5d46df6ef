package models

import "github.com/shopspring/decimal"

// Entities are plain records scanned straight from rows. Request and
// response shapes live in the api package, so nothing here carries
// json tags and the password hash never leaks through serialization.

type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
}

type User struct {
	ID             int64
	Email          string
	HashedPassword string
}

type Order struct {
	ID        int64
	ProductID int64
	Quantity  int
}
