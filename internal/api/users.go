package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/safar/ecommerce-api/internal/auth"
	"github.com/safar/ecommerce-api/internal/database"
	"github.com/safar/ecommerce-api/internal/store"
)

type UserHandler struct {
	db *sql.DB
}

func NewUserHandler(db *sql.DB) *UserHandler {
	return &UserHandler{db: db}
}

// Create handles POST /users. The plaintext password is hashed here and
// never stored or echoed back.
func (h *UserHandler) Create(c echo.Context) error {
	var in UserInput
	if err := c.Bind(&in); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&in); err != nil {
		return validationFailed(c, err)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return serverError(c, err)
	}

	user, err := store.CreateUser(c.Request().Context(), h.db, in.Email, hashed)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, map[string]string{"detail": "Email already registered"})
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewUserOutput(user))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	user, err := store.GetUser(c.Request().Context(), h.db, id)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, NewUserOutput(user))
}
