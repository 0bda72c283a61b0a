package pages

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/dto"
)

// ListState is state of customers list page
type ListState int

const (
	ListLoading ListState = iota
	ListLoaded
)

// ListPage shows all customers
type ListPage struct {
	api       CustomerAPI
	state     ListState
	customers []dto.Customer
}

// NewListPage builds list page in loading state
func NewListPage(api CustomerAPI) *ListPage {
	return &ListPage{api: api, state: ListLoading}
}

// Load fetches customers, failure results in empty list
func (p *ListPage) Load(ctx context.Context) {
	customers, err := p.api.ListCustomers(ctx)
	if err != nil {
		logrus.Errorf("failed to load customers - %v", err)
		customers = make([]dto.Customer, 0)
	}

	p.customers = customers
	p.state = ListLoaded
}

func (p *ListPage) State() ListState {
	return p.state
}

func (p *ListPage) Customers() []dto.Customer {
	return p.customers
}
