package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customer-directory/internal/cache"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/dto"
	"github.com/umalmyha/customer-directory/internal/infra"
	"github.com/umalmyha/customer-directory/internal/service"
	"github.com/umalmyha/customer-directory/internal/validation"
)

type customerClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *infra.Store
	server *httptest.Server
	client *CustomerClient
}

func (s *customerClientTestSuite) SetupTest() {
	s.ctx = context.Background()

	cfg := config.APIConfig{
		StoreDriver: config.StoreDriverSQLite,
		SQLiteCfg:   config.SQLiteCfg{Path: filepath.Join(s.T().TempDir(), "customers.db")},
	}

	store, err := infra.OpenStore(s.ctx, cfg)
	s.Require().NoError(err, "failed to open sqlite store")
	s.store = store

	v, err := validation.New()
	s.Require().NoError(err, "failed to build validator")

	customerSvc := service.NewCustomerService(store.Transactor, store.Customers, cache.NewNoopCustomerCache())
	s.server = httptest.NewServer(infra.Router(customerSvc, v))

	client, err := NewCustomerClient(s.server.URL, s.server.Client())
	s.Require().NoError(err, "failed to build client")
	s.client = client
}

func (s *customerClientTestSuite) TearDownTest() {
	s.server.Close()
	s.Require().NoError(s.store.Close(s.ctx))
}

func (s *customerClientTestSuite) TestCustomerLifecycle() {
	email := "ann.lee@example.com"
	ann := dto.Customer{
		CustomerID: "11111111-1111-1111-1111-111111111111",
		FirstName:  "Ann",
		LastName:   "Lee",
	}

	s.T().Log("customer is created and can be read back")
	{
		s.Require().NoError(s.client.CreateCustomer(s.ctx, ann))

		c, err := s.client.GetCustomer(s.ctx, ann.CustomerID)
		s.Require().NoError(err)
		s.Require().NotNil(c, "customer must be found")
		s.Assert().Equal(ann, *c)
		s.Assert().Nil(c.Email, "email must be omitted")
	}

	s.T().Log("customer is updated with full overwrite")
	{
		updated := ann
		updated.LastName = "Lee-Smith"
		updated.Email = &email
		s.Require().NoError(s.client.UpdateCustomer(s.ctx, updated))

		c, err := s.client.GetCustomer(s.ctx, ann.CustomerID)
		s.Require().NoError(err)
		s.Require().NotNil(c)
		s.Assert().Equal(updated, *c)
	}

	s.T().Log("customer is deleted and can't be found anymore")
	{
		s.Require().NoError(s.client.DeleteCustomer(s.ctx, ann.CustomerID))

		c, err := s.client.GetCustomer(s.ctx, ann.CustomerID)
		s.Require().NoError(err, "missing customer is not an error")
		s.Assert().Nil(c)
	}
}

func (s *customerClientTestSuite) TestListCustomersOrdered() {
	customers := []dto.Customer{
		{CustomerID: "6f9a8a51-2c5d-4a43-9d3b-0d7c7f0a1b01", FirstName: "Zed", LastName: "Adams"},
		{CustomerID: "6f9a8a51-2c5d-4a43-9d3b-0d7c7f0a1b02", FirstName: "Ann", LastName: "Lee"},
		{CustomerID: "6f9a8a51-2c5d-4a43-9d3b-0d7c7f0a1b03", FirstName: "Ann", LastName: "Baker"},
	}
	for _, c := range customers {
		s.Require().NoError(s.client.CreateCustomer(s.ctx, c))
	}

	s.T().Log("customers must be sorted by first name, then last name")
	{
		list, err := s.client.ListCustomers(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 3)
		s.Assert().Equal("Baker", list[0].LastName)
		s.Assert().Equal("Lee", list[1].LastName)
		s.Assert().Equal("Zed", list[2].FirstName)
	}
}

func (s *customerClientTestSuite) TestListCustomersEmpty() {
	list, err := s.client.ListCustomers(s.ctx)
	s.Require().NoError(err)
	s.Assert().NotNil(list)
	s.Assert().Empty(list)
}

func (s *customerClientTestSuite) TestStatusErrors() {
	ann := dto.Customer{CustomerID: "11111111-1111-1111-1111-111111111111", FirstName: "Ann", LastName: "Lee"}
	s.Require().NoError(s.client.CreateCustomer(s.ctx, ann))

	s.T().Log("duplicate customer is rejected with conflict")
	{
		err := s.client.CreateCustomer(s.ctx, ann)

		var statusErr *StatusError
		s.Require().True(errors.As(err, &statusErr), "status error must be returned")
		s.Assert().Equal(http.StatusConflict, statusErr.StatusCode)
		s.Assert().Equal(http.MethodPost, statusErr.Method)
		s.Assert().Equal("/customers", statusErr.Path)
		s.Assert().NotEmpty(statusErr.Message)
	}

	s.T().Log("invalid customer is rejected with field messages")
	{
		err := s.client.CreateCustomer(s.ctx, dto.Customer{CustomerID: "not-a-uuid", LastName: "Lee"})

		var statusErr *StatusError
		s.Require().True(errors.As(err, &statusErr), "status error must be returned")
		s.Assert().Equal(http.StatusBadRequest, statusErr.StatusCode)
		s.Assert().Contains(statusErr.Message, "customerId")
		s.Assert().Contains(statusErr.Message, "firstName")
	}

	s.T().Log("update of unknown customer is not found")
	{
		err := s.client.UpdateCustomer(s.ctx, dto.Customer{CustomerID: "22222222-2222-2222-2222-222222222222", FirstName: "Bob", LastName: "Ray"})

		var statusErr *StatusError
		s.Require().True(errors.As(err, &statusErr), "status error must be returned")
		s.Assert().Equal(http.StatusNotFound, statusErr.StatusCode)
		s.Assert().Empty(statusErr.Message)
	}

	s.T().Log("delete of unknown customer is not found and store stays unchanged")
	{
		err := s.client.DeleteCustomer(s.ctx, "22222222-2222-2222-2222-222222222222")

		var statusErr *StatusError
		s.Require().True(errors.As(err, &statusErr), "status error must be returned")
		s.Assert().Equal(http.StatusNotFound, statusErr.StatusCode)

		list, err := s.client.ListCustomers(s.ctx)
		s.Require().NoError(err)
		s.Assert().Len(list, 1)
	}
}

func TestNewCustomerClientBasePath(t *testing.T) {
	c, err := NewCustomerClient("http://localhost:3000/api", nil)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000/api/", c.baseURL.String(), "base path must end with slash")
}

// start customer client test suite
func TestCustomerClientTestSuite(t *testing.T) {
	suite.Run(t, new(customerClientTestSuite))
}
