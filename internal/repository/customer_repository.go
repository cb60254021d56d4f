package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
	"github.com/iliyamo/movie-ticket-sales/internal/utils"
)

// CustomerRepo provides access to the `customers` table. Customers are
// immutable after creation and only consulted for the credential check
// when booking, so the repository stores a bcrypt hash and never the
// plain password.
type CustomerRepo struct{ db *sql.DB }

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create hashes the password and inserts the customer. It returns
// ErrConflict when the user name is already taken.
func (r *CustomerRepo) Create(ctx context.Context, userName, fullName, password string, cost int) error {
	userName = strings.TrimSpace(userName)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO customers (user_name, full_name, password_hash) VALUES (?,?,?)",
		userName, fullName, hash)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByUserName fetches a customer by user name. It returns
// ErrCustomerNotFound for an unknown name.
func (r *CustomerRepo) GetByUserName(ctx context.Context, userName string) (model.Customer, error) {
	var c model.Customer
	err := r.db.QueryRowContext(ctx,
		"SELECT user_name, full_name, password_hash FROM customers WHERE user_name = ? LIMIT 1",
		strings.TrimSpace(userName)).Scan(&c.UserName, &c.FullName, &c.PasswordHash)
	if err == sql.ErrNoRows {
		return model.Customer{}, ErrCustomerNotFound
	}
	return c, err
}
