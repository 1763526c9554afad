package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/emmanueldev/checking-account/internal/models"
)

// uniqueViolation is the Postgres error code raised when an insert breaks a
// unique constraint.
const uniqueViolation = "23505"

// AccountRepository persists checking accounts in the PostgreSQL write store.
// The checking_accounts table carries a unique constraint on customer_id, so
// two concurrent openings for one customer cannot both commit even when both
// pass the advisory duplicate check.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByCustomerID returns the account owned by the customer, or (nil, nil)
// when the customer has none.
func (r *AccountRepository) FindByCustomerID(ctx context.Context, customerID int64) (*models.CheckingAccount, error) {
	query := `
		SELECT id, version, iban, currency, customer_id, customer_name
		FROM checking_accounts
		WHERE customer_id = $1
	`
	var account models.CheckingAccount
	var customer models.Customer
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(
		&account.ID, &account.Version, &account.Iban, &account.Currency,
		&customer.ID, &customer.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by customer: %w", err)
	}
	account.Customer = &customer
	return &account, nil
}

// Save inserts the account and returns a copy carrying the database-assigned
// id and initial version. A unique-constraint breach on customer_id reports
// models.ErrAccountAlreadyOpened.
func (r *AccountRepository) Save(ctx context.Context, account *models.CheckingAccount) (*models.CheckingAccount, error) {
	query := `
		INSERT INTO checking_accounts (iban, currency, customer_id, customer_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, version
	`
	var id, version int64
	err := r.db.QueryRowContext(ctx, query,
		account.Iban, account.Currency, account.Customer.ID, account.Customer.Name,
	).Scan(&id, &version)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, models.ErrAccountAlreadyOpened
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return account.WithIdentity(id, version), nil
}
