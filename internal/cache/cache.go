package cache

import (
	"context"

	"github.com/umalmyha/customer-directory/internal/model"
)

type noopCustomerCache struct{}

// NewNoopCustomerCache builds cache which never stores anything, it is used when redis is not configured
func NewNoopCustomerCache() CustomerCacheRepository {
	return noopCustomerCache{}
}

func (noopCustomerCache) FindByID(context.Context, string) (*model.Customer, error) {
	return nil, nil
}

func (noopCustomerCache) Create(context.Context, *model.Customer) error {
	return nil
}

func (noopCustomerCache) DeleteByID(context.Context, string) error {
	return nil
}
