package api

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/safar/ecommerce-api/internal/config"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// NewRouter mounts the HTTP surface onto a fresh echo instance. Order
// routes exist in the store but are only mounted when enabled in config.
func NewRouter(db *sql.DB, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions, http.MethodHead, http.MethodPatch},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Ecommerce API is running"})
	})

	products := NewProductHandler(db)
	e.GET("/products", products.List)
	e.POST("/products", products.Create)
	e.GET("/products/:id", products.Get)
	e.PUT("/products/:id", products.Update)
	e.DELETE("/products/:id", products.Delete)

	users := NewUserHandler(db)
	e.POST("/users", users.Create)
	e.GET("/users/:id", users.Get)

	if cfg.Server.OrderRoutesEnabled {
		orders := NewOrderHandler(db)
		e.POST("/orders", orders.Create)
		e.GET("/orders/:id", orders.Get)
	}

	return e
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "Invalid request body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{"detail": fieldErrors(err)})
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
		"detail": []FieldError{{Field: "id", Message: "must be an integer"}},
	})
}

func notFound(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"detail": detail})
}

// serverError logs the underlying failure and hides it from the caller.
func serverError(c echo.Context, err error) error {
	logger.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("storage failure")
	return c.JSON(http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
}
