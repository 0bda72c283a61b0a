package pages

import (
	"context"

	"github.com/google/uuid"
	"github.com/umalmyha/customer-directory/internal/dto"
)

// DeleteState is state of delete confirmation page
type DeleteState int

const (
	DeleteUninitialized DeleteState = iota
	DeletePopulated
)

// DeletePage asks for confirmation before customer is deleted
type DeletePage struct {
	api CustomerAPI

	state    DeleteState
	id       uuid.UUID
	customer *dto.Customer
	message  string
}

// NewDeletePage builds uninitialized delete page
func NewDeletePage(api CustomerAPI) *DeletePage {
	return &DeletePage{api: api, state: DeleteUninitialized}
}

// Navigate fetches customer to be confirmed, navigation to the same id is ignored
func (p *DeletePage) Navigate(ctx context.Context, id uuid.UUID) {
	if p.state == DeletePopulated && p.id == id {
		return
	}

	p.id = id
	p.customer = nil
	p.message = ""

	c, err := p.api.GetCustomer(ctx, id.String())
	if err != nil {
		p.message = err.Error()
	}
	p.customer = c
	p.state = DeletePopulated
}

// Delete removes customer, page stays open with message on failure
func (p *DeletePage) Delete(ctx context.Context) Navigation {
	if p.state != DeletePopulated {
		return Stay
	}

	if err := p.api.DeleteCustomer(ctx, p.id.String()); err != nil {
		p.message = err.Error()
		return Stay
	}
	return ToList
}

func (p *DeletePage) State() DeleteState {
	return p.state
}

func (p *DeletePage) ID() uuid.UUID {
	return p.id
}

// Customer returns customer to delete, nil if it doesn't exist
func (p *DeletePage) Customer() *dto.Customer {
	return p.customer
}

func (p *DeletePage) Message() string {
	return p.message
}
