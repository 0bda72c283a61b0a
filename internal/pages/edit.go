package pages

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/umalmyha/customer-directory/internal/dto"
	"github.com/umalmyha/customer-directory/internal/validation"
)

// EditState is state of add/edit page
type EditState int

const (
	EditUninitialized EditState = iota
	EditPopulated
	EditSaving
	EditError
)

// EditPage adds new customer when navigated with uuid.Nil and edits existing one otherwise
type EditPage struct {
	api       CustomerAPI
	validator *validation.Validator

	state      EditState
	navigated  bool
	id         uuid.UUID
	found      bool
	customer   dto.Customer
	violations map[string]string
	message    string
}

// NewEditPage builds uninitialized add/edit page
func NewEditPage(api CustomerAPI, v *validation.Validator) *EditPage {
	return &EditPage{
		api:        api,
		validator:  v,
		state:      EditUninitialized,
		violations: make(map[string]string),
	}
}

// Navigate loads customer with provided id, navigation to the same id is ignored
func (p *EditPage) Navigate(ctx context.Context, id uuid.UUID) {
	if p.navigated && p.id == id {
		return
	}

	p.navigated = true
	p.id = id
	p.found = false
	p.customer = dto.Customer{}
	p.violations = make(map[string]string)
	p.message = ""

	if p.IsNew() {
		p.found = true
		p.state = EditPopulated
		return
	}

	c, err := p.api.GetCustomer(ctx, id.String())
	if err != nil {
		p.message = err.Error()
		p.state = EditError
		return
	}

	if c != nil {
		p.found = true
		p.customer = *c
	}
	p.state = EditPopulated
}

// Bind copies submitted fields to the page, id is never taken from form
func (p *EditPage) Bind(form dto.Customer) {
	p.customer.FirstName = form.FirstName
	p.customer.LastName = form.LastName
	p.customer.Email = nil
	if form.Email != nil {
		if email := strings.TrimSpace(*form.Email); email != "" {
			p.customer.Email = &email
		}
	}
}

// Save validates and submits customer, page stays open if customer is invalid or API call failed
func (p *EditPage) Save(ctx context.Context) Navigation {
	if p.state != EditPopulated {
		return Stay
	}

	candidate := p.customer
	if p.IsNew() {
		candidate.CustomerID = uuid.NewString()
	} else {
		candidate.CustomerID = p.id.String()
	}

	p.violations = make(map[string]string)
	if err := p.validator.Validate(&candidate); err != nil {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			p.violations = pldErr.ViolationsByField()
			return Stay
		}
		p.message = err.Error()
		p.state = EditError
		return Stay
	}

	p.state = EditSaving
	var err error
	if p.IsNew() {
		err = p.api.CreateCustomer(ctx, candidate)
	} else {
		err = p.api.UpdateCustomer(ctx, candidate)
	}

	if err != nil {
		p.message = err.Error()
		p.state = EditError
		return Stay
	}

	p.customer = candidate
	return ToList
}

func (p *EditPage) State() EditState {
	return p.state
}

// IsNew reports whether page adds new customer
func (p *EditPage) IsNew() bool {
	return p.id == uuid.Nil
}

// Found reports whether edited customer exists
func (p *EditPage) Found() bool {
	return p.found
}

func (p *EditPage) Customer() dto.Customer {
	return p.customer
}

// Violation returns validation message for field or empty string
func (p *EditPage) Violation(field string) string {
	return p.violations[field]
}

func (p *EditPage) Message() string {
	return p.message
}
