package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/umalmyha/customer-directory/internal/model"
	"github.com/umalmyha/customer-directory/pkg/db/transactor"
)

type sqliteCustomerRepository struct {
	trx transactor.SQLWithinTransactionExecutor
}

// NewSQLiteCustomerRepository builds sqlite customer repository
func NewSQLiteCustomerRepository(trx transactor.SQLWithinTransactionExecutor) CustomerRepository {
	return &sqliteCustomerRepository{trx: trx}
}

func (r *sqliteCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT id, first_name, last_name, email FROM customers WHERE id = ?"

	var c model.Customer
	row := r.trx.Executor(ctx).QueryRowContext(ctx, q, id)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT id, first_name, last_name, email FROM customers ORDER BY first_name, last_name"

	rows, err := r.trx.Executor(ctx).QueryContext(ctx, q)
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

func (r *sqliteCustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	q := "INSERT INTO customers(id, first_name, last_name, email) VALUES(?, ?, ?, ?)"
	res, err := r.trx.Executor(ctx).ExecContext(ctx, q, c.ID, c.FirstName, c.LastName, c.Email)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique) {
			return false, customerExistsErr(c.ID)
		}
		return false, err
	}
	return r.affected(res)
}

func (r *sqliteCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := "UPDATE customers SET first_name = ?, last_name = ?, email = ? WHERE id = ?"
	res, err := r.trx.Executor(ctx).ExecContext(ctx, q, c.FirstName, c.LastName, c.Email, c.ID)
	if err != nil {
		return false, err
	}
	return r.affected(res)
}

func (r *sqliteCustomerRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	q := "DELETE FROM customers WHERE id = ?"
	res, err := r.trx.Executor(ctx).ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	return r.affected(res)
}

func (r *sqliteCustomerRepository) affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
