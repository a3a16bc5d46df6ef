package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/safar/ecommerce-api/internal/models"
	"github.com/safar/ecommerce-api/internal/store"
	"github.com/shopspring/decimal"
)

// Request and response shapes, decoupled from the storage rows in
// internal/models. Required numeric fields are pointers so a missing
// field is distinguishable from an explicit zero.

type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Stock       *int     `json:"stock" validate:"required"`
	ImageURL    *string  `json:"image_url"`
}

func (in *ProductInput) Fields() store.ProductFields {
	return store.ProductFields{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(*in.Price),
		Stock:       *in.Stock,
		ImageURL:    in.ImageURL,
	}
}

type ProductOutput struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"image_url"`
}

func NewProductOutput(p *models.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
	}
}

type UserInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserOutput never carries the password or its hash.
type UserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func NewUserOutput(u *models.User) UserOutput {
	return UserOutput{ID: u.ID, Email: u.Email}
}

type OrderInput struct {
	ProductID *int64 `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

type OrderOutput struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func NewOrderOutput(o *models.Order) OrderOutput {
	return OrderOutput{ID: o.ID, ProductID: o.ProductID, Quantity: o.Quantity}
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	// Report field errors under their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("failed %q validation", fe.Tag())
		if fe.Tag() == "required" {
			msg = "field is required"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
