package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safar/ecommerce-api/internal/database"
	"github.com/safar/ecommerce-api/internal/store"
)

// OrderHandler backs the optional order routes. The store side always
// exists; the routes mount only when ORDER_ROUTES_ENABLED is set.
type OrderHandler struct {
	db *sql.DB
}

func NewOrderHandler(db *sql.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context) error {
	var in OrderInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&in); err != nil {
		return validationFailed(c, err)
	}

	order, err := store.CreateOrder(c.Request().Context(), h.db, *in.ProductID, *in.Quantity)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewOrderOutput(order))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	order, err := store.GetOrder(c.Request().Context(), h.db, id)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			return notFound(c, "Order not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewOrderOutput(order))
}
