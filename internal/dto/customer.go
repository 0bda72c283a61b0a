package dto

import "github.com/umalmyha/customer-directory/internal/model"

// Customer is the wire representation of a customer shared by the API and its clients.
// Email is omitted from JSON when absent.
type Customer struct {
	CustomerID string  `json:"customerId" form:"customerId" validate:"required,uuid"`
	FirstName  string  `json:"firstName" form:"firstName" validate:"required,notblank"`
	LastName   string  `json:"lastName" form:"lastName" validate:"required,notblank"`
	Email      *string `json:"email,omitempty" form:"email"`
}

// FromModel builds dto from persisted customer
func FromModel(c *model.Customer) Customer {
	return Customer{
		CustomerID: c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
	}
}

// ToModel converts dto to the persisted customer shape
func (c Customer) ToModel() *model.Customer {
	return &model.Customer{
		ID:        c.CustomerID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}
