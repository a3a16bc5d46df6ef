package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/safar/ecommerce-api/internal/database"
	"github.com/safar/ecommerce-api/internal/store"
)

type ProductHandler struct {
	db *sql.DB
}

func NewProductHandler(db *sql.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// List handles GET /products?skip&limit.
func (h *ProductHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 100
	}

	products, err := store.ListProducts(c.Request().Context(), h.db, skip, limit)
	if err != nil {
		return serverError(c, err)
	}

	out := make([]ProductOutput, 0, len(products))
	for i := range products {
		out = append(out, NewProductOutput(&products[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var in ProductInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&in); err != nil {
		return validationFailed(c, err)
	}

	product, err := store.CreateProduct(c.Request().Context(), h.db, in.Fields())
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewProductOutput(product))
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	product, err := store.GetProduct(c.Request().Context(), h.db, id)
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewProductOutput(product))
}

// Update handles PUT /products/:id as a full overwrite of all fields.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var in ProductInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&in); err != nil {
		return validationFailed(c, err)
	}

	product, err := store.UpdateProduct(c.Request().Context(), h.db, id, in.Fields())
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewProductOutput(product))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	deleted, err := store.DeleteProduct(c.Request().Context(), h.db, id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c, "Product not found")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
