// Package service orchestrates the checking account opening workflow:
// validation, duplicate detection, persistence, and event emission.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/emmanueldev/checking-account/internal/events"
	"github.com/emmanueldev/checking-account/internal/models"
	"github.com/emmanueldev/checking-account/internal/validator"
)

// AccountStore is the persistence capability the workflow depends on.
type AccountStore interface {
	// FindByCustomerID returns the customer's account, or (nil, nil) when the
	// customer has none.
	FindByCustomerID(ctx context.Context, customerID int64) (*models.CheckingAccount, error)
	// Save persists a new account and returns it with id and version
	// assigned. It reports models.ErrAccountAlreadyOpened when the customer
	// uniqueness constraint is breached.
	Save(ctx context.Context, account *models.CheckingAccount) (*models.CheckingAccount, error)
}

// EventPublisher emits account events keyed by account id.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key int64, event events.AccountEvent) error
}

// OpenAccountService opens checking accounts. One durable write and at most
// one publish attempt per request; no retries of its own.
type OpenAccountService struct {
	store     AccountStore
	publisher EventPublisher
	validator *validator.InputValidator
}

func NewOpenAccountService(store AccountStore, publisher EventPublisher) *OpenAccountService {
	return &OpenAccountService{
		store:     store,
		publisher: publisher,
		validator: validator.NewInputValidator(),
	}
}

// Open validates the candidate account, rejects customers that already own
// one, persists it, and emits an "opened" event. The returned account carries
// the store-assigned id and version. Failures map to *models.ViolationError,
// models.ErrAccountAlreadyOpened, or *models.StorageError; the publish
// outcome never affects the result.
func (s *OpenAccountService) Open(ctx context.Context, account *models.CheckingAccount) (*models.CheckingAccount, error) {
	if err := s.validator.Validate(account); err != nil {
		log.Printf("Failed to open account, the input is invalid: %v", err)
		return nil, err
	}

	existing, err := s.store.FindByCustomerID(ctx, account.Customer.ID)
	if err != nil {
		return nil, &models.StorageError{Op: "find account", Err: err}
	}
	if existing != nil {
		log.Printf("Failed to open account for customer %d: %v", account.Customer.ID, models.ErrAccountAlreadyOpened)
		return nil, models.ErrAccountAlreadyOpened
	}

	opened, err := s.store.Save(ctx, account)
	if err != nil {
		if errors.Is(err, models.ErrAccountAlreadyOpened) {
			// Lost the duplicate-check race; the store constraint settled it.
			return nil, err
		}
		return nil, &models.StorageError{Op: "save account", Err: err}
	}

	s.publishOpened(ctx, opened)

	return opened, nil
}

// publishOpened emits the opened event without joining its outcome into the
// opening result. The detached context keeps a request cancelled after a
// successful save from cancelling the publish attempt.
func (s *OpenAccountService) publishOpened(ctx context.Context, opened *models.CheckingAccount) {
	event := events.NewAccountEvent(events.AccountOpened, opened)
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := s.publisher.Publish(detached, events.CheckingAccountTopic, opened.ID, event); err != nil {
			log.Printf("Failed to publish %s event for account %d: %v", events.AccountOpened, opened.ID, err)
		}
	}()
}
