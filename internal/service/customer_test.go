package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/customer-directory/internal/cache/mocks"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
	rpsMocks "github.com/umalmyha/customer-directory/internal/repository/mocks"
	trxMocks "github.com/umalmyha/customer-directory/pkg/db/transactor/mocks"
)

type customerTestData struct {
	ctx      context.Context
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	transactorMock    *trxMocks.Transactor
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCacheRepository
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	email := "john.walls@somemail.com"
	s.testData = &customerTestData{
		ctx: context.Background(),
		customer: &model.Customer{
			ID:        "ecc770d9-4576-4f72-affa-8b1454246692",
			FirstName: "John",
			LastName:  "Walls",
			Email:     &email,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.transactorMock = trxMocks.NewTransactor(t)
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCacheRepository(t)
	s.customerSvc = NewCustomerService(s.transactorMock, s.customerRpsMock, s.customerCacheMock)
}

func (s *customerServiceTestSuite) passThroughTransaction() {
	s.transactorMock.On(
		"WithinTransaction",
		s.testData.ctx,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(context.Context) error) error {
		return txFunc(ctx)
	}).Once()
}

func (s *customerServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "cached customer must be returned")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Nil(c, "no customer must be present but it was found")
		s.customerCacheMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(c, "customer must be found")
		s.customerCacheMock.AssertCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCacheWriteFailureIgnored() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(errors.New("cache err")).Once()

	s.T().Log("failure to cache customer must not fail the read")
	{
		c, err := s.customerSvc.FindByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "customer from primary datasource must be returned")
	}
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("Create", ctx, customer).Return(true, nil).Once()

	s.T().Log("customer must be created successfully")
	{
		c, err := s.customerSvc.Create(ctx, customer)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customer, c, "created customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestCreateDuplicate() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("Create", ctx, customer).Return(false, apperrors.NewBusinessErr("customerId", "exists")).Once()

	s.T().Log("duplicate customer must be rejected")
	{
		_, err := s.customerSvc.Create(ctx, customer)
		var businessErr *apperrors.BusinessErr
		s.Assert().ErrorAs(err, &businessErr, "business error must be raised")
	}
}

func (s *customerServiceTestSuite) TestCreateNothingWritten() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("Create", ctx, customer).Return(false, nil).Once()

	s.T().Log("no rows written must be reported as persistence error")
	{
		_, err := s.customerSvc.Create(ctx, customer)
		var persistenceErr *apperrors.PersistenceErr
		s.Assert().ErrorAs(err, &persistenceErr, "persistence error must be raised")
	}
}

func (s *customerServiceTestSuite) TestFindAllSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	customers := []*model.Customer{customer}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	s.T().Log("customers must be found from data source")
	{
		found, err := s.customerSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(customers, found, "customers must be returned as is")
	}
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing, so update must report not found")
	{
		_, err := s.customerSvc.Update(ctx, customer)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestUpdateSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Twice()
	s.customerRpsMock.On("Update", ctx, customer).Return(true, nil).Once()

	s.T().Log("customer is present, so must be updated and evicted from cache")
	{
		_, err := s.customerSvc.Update(ctx, customer)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerServiceTestSuite) TestUpdateNothingAffected() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("Update", ctx, customer).Return(false, nil).Once()

	s.T().Log("customer exists but no rows affected must be persistence error")
	{
		_, err := s.customerSvc.Update(ctx, customer)
		var persistenceErr *apperrors.PersistenceErr
		s.Assert().ErrorAs(err, &persistenceErr, "persistence error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()

	s.T().Log("delete of missing customer must report not found")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		var notFoundErr *apperrors.EntryNotFoundErr
		s.Assert().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.customerCacheMock.AssertNotCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDCacheFailed() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(errors.New("cache err")).Once()

	s.T().Log("delete customer from cache failed")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().Error(err, "cache raised error - error must be raised up")
		s.customerRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Twice()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()

	s.T().Log("deleted successfully")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.customerRpsMock.AssertCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) trackedTransaction(committed *bool) {
	s.transactorMock.On(
		"WithinTransaction",
		s.testData.ctx,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(context.Context) error) error {
		if err := txFunc(ctx); err != nil {
			return err
		}
		*committed = true
		return nil
	}).Once()
}

func (s *customerServiceTestSuite) TestUpdateEvictsAfterCommit() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	committed := false
	evictions := make([]bool, 0, 2)

	s.trackedTransaction(&committed)
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerRpsMock.On("Update", ctx, customer).Return(true, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Run(func(mock.Arguments) {
		evictions = append(evictions, committed)
	}).Return(nil).Twice()

	s.T().Log("customer cached by concurrent read before commit must be evicted once update is committed")
	{
		_, err := s.customerSvc.Update(ctx, customer)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal([]bool{false, true}, evictions, "customer must be evicted within and after transaction")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDEvictsAfterCommit() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	committed := false
	evictions := make([]bool, 0, 2)

	s.trackedTransaction(&committed)
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Run(func(mock.Arguments) {
		evictions = append(evictions, committed)
	}).Return(nil).Twice()

	s.T().Log("customer cached by concurrent read before commit must be evicted once delete is committed")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal([]bool{false, true}, evictions, "customer must be evicted within and after transaction")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDEvictionAfterCommitFailureIgnored() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(errors.New("cache err")).Once()

	s.T().Log("committed delete must not fail because of cache")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
