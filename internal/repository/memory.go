package repository

import (
	"context"
	"sync"

	"github.com/emmanueldev/checking-account/internal/models"
)

// MemoryAccountRepository is an in-memory store with the same contract as the
// PostgreSQL repository, including the one-account-per-customer constraint.
// Used by tests and local runs without a database.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[int64]*models.CheckingAccount
	nextID   int64
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[int64]*models.CheckingAccount),
	}
}

func (m *MemoryAccountRepository) FindByCustomerID(ctx context.Context, customerID int64) (*models.CheckingAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[customerID]
	if !ok {
		return nil, nil
	}
	return account, nil
}

func (m *MemoryAccountRepository) Save(ctx context.Context, account *models.CheckingAccount) (*models.CheckingAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Customer.ID]; exists {
		return nil, models.ErrAccountAlreadyOpened
	}

	m.nextID++
	persisted := account.WithIdentity(m.nextID, 1)
	m.accounts[account.Customer.ID] = persisted
	return persisted, nil
}
