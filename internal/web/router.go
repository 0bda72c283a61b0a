package web

import (
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/umalmyha/customer-directory/internal/handlers"
	"github.com/umalmyha/customer-directory/internal/middleware"
	"github.com/umalmyha/customer-directory/internal/pages"
	"github.com/umalmyha/customer-directory/internal/validation"
)

// Router builds echo application serving customer pages
func Router(api pages.CustomerAPI, v *validation.Validator) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(echoMw.RequestID(), middleware.RequestLogger())

	h := NewCustomerPagesHandler(api, v)

	e.GET("/health", handlers.Health)
	e.GET("/", h.List)
	e.GET("/add", h.Add)
	e.POST("/add", h.SaveNew)
	e.GET("/edit/:id", h.Edit)
	e.POST("/edit/:id", h.SaveExisting)
	e.GET("/delete/:id", h.ConfirmDelete)
	e.POST("/delete/:id", h.Delete)

	return e, nil
}
