package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-directory/internal/dto"
	"github.com/umalmyha/customer-directory/internal/service"
)

// GetCustomerRouteName is the name of the route serving single customer, it is used to build Location header
const GetCustomerRouteName = "customers.get"

type identifier struct {
	ID string `json:"id" validate:"required,uuid"`
}

// canonicalID converts well-formed uuid of any case to lowercase hyphenated form, malformed ids are kept for validation
func canonicalID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

func bindErr(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers ordered by first name, then last name
// @Tags        customers
// @Produce     json
// @Success     200    {array}  dto.Customer
// @Failure     500    {object} echo.HTTPError
// @Router      /customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	res := make([]dto.Customer, 0, len(customers))
	for _, cust := range customers {
		res = append(res, dto.FromModel(cust))
	}
	return c.JSON(http.StatusOK, res)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id     path     string true "Customer guid" Format(uuid)
// @Success     200    {object} dto.Customer
// @Failure     400    {object} validation.PayloadError
// @Failure     404    "Customer not found"
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := canonicalID(c.Param("id"))
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if customer == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, dto.FromModel(customer))
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer with id provided by client
// @Tags        customers
// @Accept      json
// @Param       customer body     dto.Customer true "Data for new customer"
// @Success     201      "Location header references new customer"
// @Failure     400      {object} validation.PayloadError
// @Failure     409      {object} errors.BusinessErr
// @Failure     500      {object} echo.HTTPError
// @Router      /customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc dto.Customer
	if err := c.Bind(&nc); err != nil {
		return bindErr(err)
	}
	nc.CustomerID = canonicalID(nc.CustomerID)

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), nc.ToModel())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Echo().Reverse(GetCustomerRouteName, customer.ID))
	return c.NoContent(http.StatusCreated)
}

// Put updates customer
// @Summary     Update Customer
// @Description Overwrites all fields of existing customer, id is taken from body
// @Tags        customers
// @Accept      json
// @Param       customer body     dto.Customer true "Customer data"
// @Success     200      "Successful status code"
// @Failure     400      {object} validation.PayloadError
// @Failure     404      "Customer not found"
// @Failure     500      {object} echo.HTTPError
// @Router      /customers [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var uc dto.Customer
	if err := c.Bind(&uc); err != nil {
		return bindErr(err)
	}
	uc.CustomerID = canonicalID(uc.CustomerID)

	if err := c.Validate(&uc); err != nil {
		return err
	}

	if _, err := h.customerSvc.Update(c.Request().Context(), uc.ToModel()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id
// @Tags        customers
// @Param       id     path     string true "Customer guid" Format(uuid)
// @Success     200    "Successful status code"
// @Failure     400    {object} validation.PayloadError
// @Failure     404    "Customer not found"
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := canonicalID(c.Param("id"))
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
