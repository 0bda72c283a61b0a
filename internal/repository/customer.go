package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/customer-directory/internal/errors"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/pkg/db/transactor"
)

const pgUniqueViolationCode = "23505"

// CustomerRepository represents behavior of customer data source.
// Update and DeleteByID report whether entry was matched, FindByID returns nil if customer is missing.
type CustomerRepository interface {
	FindByID(context.Context, string) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) (bool, error)
	Update(context.Context, *model.Customer) (bool, error)
	DeleteByID(context.Context, string) (bool, error)
}

func customerExistsErr(id string) error {
	return apperrors.NewBusinessErr("customerId", fmt.Sprintf("customer with id %s already exists", id))
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres customer repository
func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT id, first_name, last_name, email FROM customers WHERE id = $1"

	var c model.Customer
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT id, first_name, last_name, email FROM customers ORDER BY first_name, last_name"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	q := "INSERT INTO customers(id, first_name, last_name, email) VALUES($1, $2, $3, $4)"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, c.ID, c.FirstName, c.LastName, c.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return false, customerExistsErr(c.ID)
		}
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := "UPDATE customers SET first_name = $1, last_name = $2, email = $3 WHERE id = $4"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, c.FirstName, c.LastName, c.Email, c.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM customers WHERE id = $1"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
