// Package pages holds per-request state machines behind the web front end.
// Router handlers create a page, drive it with navigation events and render its state.
package pages

import (
	"context"

	"github.com/umalmyha/customer-directory/internal/dto"
)

// CustomerAPI is the part of customers API used by pages
type CustomerAPI interface {
	ListCustomers(context.Context) ([]dto.Customer, error)
	GetCustomer(context.Context, string) (*dto.Customer, error)
	CreateCustomer(context.Context, dto.Customer) error
	UpdateCustomer(context.Context, dto.Customer) error
	DeleteCustomer(context.Context, string) error
}

// Navigation tells router where to go after page action
type Navigation int

const (
	// Stay renders current page again
	Stay Navigation = iota
	// ToList redirects to customers list
	ToList
)
