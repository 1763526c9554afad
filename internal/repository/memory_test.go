package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/emmanueldev/checking-account/internal/models"
)

func TestMemorySaveAssignsIdentity(t *testing.T) {
	repo := NewMemoryAccountRepository()
	candidate := models.NewCheckingAccount("DE8930", "EUR", &models.Customer{ID: 1, Name: "Ana"})

	persisted, err := repo.Save(context.Background(), candidate)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if persisted.ID != 1 || persisted.Version != 1 {
		t.Errorf("expected id=1 version=1, got id=%d version=%d", persisted.ID, persisted.Version)
	}
	if candidate.ID != 0 || candidate.Version != 0 {
		t.Errorf("save mutated its argument: %+v", candidate)
	}

	second := models.NewCheckingAccount("FR7630", "EUR", &models.Customer{ID: 2, Name: "Bo"})
	persisted2, err := repo.Save(context.Background(), second)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if persisted2.ID != 2 {
		t.Errorf("expected sequential id 2, got %d", persisted2.ID)
	}
}

func TestMemorySaveEnforcesCustomerUniqueness(t *testing.T) {
	repo := NewMemoryAccountRepository()
	customer := &models.Customer{ID: 1, Name: "Ana"}

	if _, err := repo.Save(context.Background(), models.NewCheckingAccount("DE8930", "EUR", customer)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, err := repo.Save(context.Background(), models.NewCheckingAccount("FR7630", "USD", customer))
	if !errors.Is(err, models.ErrAccountAlreadyOpened) {
		t.Fatalf("expected ErrAccountAlreadyOpened, got %v", err)
	}
}

func TestMemoryFindByCustomerID(t *testing.T) {
	repo := NewMemoryAccountRepository()

	account, err := repo.FindByCustomerID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if account != nil {
		t.Errorf("expected no account for unknown customer, got %+v", account)
	}

	persisted, err := repo.Save(context.Background(), models.NewCheckingAccount("DE8930", "EUR", &models.Customer{ID: 1, Name: "Ana"}))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := repo.FindByCustomerID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found == nil || found.ID != persisted.ID {
		t.Errorf("expected persisted account back, got %+v", found)
	}
}

func TestMemoryHonorsCancellation(t *testing.T) {
	repo := NewMemoryAccountRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Save(ctx, models.NewCheckingAccount("DE8930", "EUR", &models.Customer{ID: 1, Name: "Ana"})); err == nil {
		t.Fatal("expected save on cancelled context to fail")
	}
	if _, err := repo.FindByCustomerID(ctx, 1); err == nil {
		t.Fatal("expected find on cancelled context to fail")
	}
}
