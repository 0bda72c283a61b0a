package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-directory/internal/dto"
	"github.com/umalmyha/customer-directory/internal/pages"
	"github.com/umalmyha/customer-directory/internal/validation"
)

// CustomerPagesHandler drives customer pages from http requests
type CustomerPagesHandler struct {
	api       pages.CustomerAPI
	validator *validation.Validator
}

// NewCustomerPagesHandler builds new CustomerPagesHandler
func NewCustomerPagesHandler(api pages.CustomerAPI, v *validation.Validator) *CustomerPagesHandler {
	return &CustomerPagesHandler{api: api, validator: v}
}

// List renders all customers
func (h *CustomerPagesHandler) List(c echo.Context) error {
	page := pages.NewListPage(h.api)
	page.Load(c.Request().Context())
	return c.Render(http.StatusOK, listTemplate, page)
}

// Add renders empty customer form
func (h *CustomerPagesHandler) Add(c echo.Context) error {
	page := pages.NewEditPage(h.api, h.validator)
	page.Navigate(c.Request().Context(), uuid.Nil)
	return c.Render(http.StatusOK, editTemplate, page)
}

// Edit renders form of existing customer
func (h *CustomerPagesHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	page := pages.NewEditPage(h.api, h.validator)
	page.Navigate(c.Request().Context(), id)
	return c.Render(http.StatusOK, editTemplate, page)
}

// SaveNew creates customer from submitted form
func (h *CustomerPagesHandler) SaveNew(c echo.Context) error {
	return h.save(c, uuid.Nil)
}

// SaveExisting updates customer from submitted form
func (h *CustomerPagesHandler) SaveExisting(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return h.save(c, id)
}

func (h *CustomerPagesHandler) save(c echo.Context, id uuid.UUID) error {
	ctx := c.Request().Context()

	page := pages.NewEditPage(h.api, h.validator)
	page.Navigate(ctx, id)
	page.Bind(customerForm(c))

	if page.Save(ctx) == pages.ToList {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, editTemplate, page)
}

// ConfirmDelete renders delete confirmation
func (h *CustomerPagesHandler) ConfirmDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	page := pages.NewDeletePage(h.api)
	page.Navigate(c.Request().Context(), id)
	return c.Render(http.StatusOK, deleteTemplate, page)
}

// Delete deletes customer after confirmation
func (h *CustomerPagesHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	page := pages.NewDeletePage(h.api)
	page.Navigate(ctx, id)

	if page.Delete(ctx) == pages.ToList {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return c.Render(http.StatusOK, deleteTemplate, page)
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return id, nil
}

func customerForm(c echo.Context) dto.Customer {
	email := c.FormValue("email")
	return dto.Customer{
		FirstName: c.FormValue("firstName"),
		LastName:  c.FormValue("lastName"),
		Email:     &email,
	}
}
