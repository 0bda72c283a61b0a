package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/cache"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/internal/repository"
	"github.com/umalmyha/customer-directory/pkg/db/transactor"
)

// CustomerService represents customer use cases
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, *model.Customer) (*model.Customer, error)
	DeleteByID(context.Context, string) error
}

type customerService struct {
	trx           transactor.Transactor
	customerRps   repository.CustomerRepository
	customerCache cache.CustomerCacheRepository
}

// NewCustomerService builds customer service
func NewCustomerService(
	trx transactor.Transactor,
	customerRps repository.CustomerRepository,
	customerCache cache.CustomerCacheRepository,
) CustomerService {
	return &customerService{
		trx:           trx,
		customerRps:   customerRps,
		customerCache: customerCache,
	}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c != nil {
		return c, nil
	}

	c, err = s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, nil
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		logrus.WithField("customerId", id).Warnf("failed to cache customer - %v", err)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	created, err := s.customerRps.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	if !created {
		return nil, apperrors.NewPersistenceErr(fmt.Sprintf("customer %s was not created", c.ID))
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.customerRps.FindByID(ctx, c.ID)
		if err != nil {
			return err
		}

		if existing == nil {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", c.ID))
		}

		if err := s.customerCache.DeleteByID(ctx, c.ID); err != nil {
			return err
		}

		updated, err := s.customerRps.Update(ctx, c)
		if err != nil {
			return err
		}

		if !updated {
			return apperrors.NewPersistenceErr(fmt.Sprintf("customer %s was not updated", c.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.evictCommitted(ctx, c.ID)
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.customerRps.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if existing == nil {
			return apperrors.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
		}

		if err := s.customerCache.DeleteByID(ctx, id); err != nil {
			return err
		}

		deleted, err := s.customerRps.DeleteByID(ctx, id)
		if err != nil {
			return err
		}

		if !deleted {
			return apperrors.NewPersistenceErr(fmt.Sprintf("customer %s was not deleted", id))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.evictCommitted(ctx, id)
	return nil
}

// evictCommitted drops entry cached by concurrent reads which observed the row before commit
func (s *customerService) evictCommitted(ctx context.Context, id string) {
	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		logrus.WithField("customerId", id).Warnf("failed to evict customer after commit - %v", err)
	}
}
