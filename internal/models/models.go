package models

// Customer identifies the owner of a checking account. Immutable once built.
type Customer struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"notblank"`
}

// CheckingAccount is the account entity. ID and Version are zero until the
// store persists the account; the store assigns both on save. Version is the
// optimistic-concurrency token for future updates.
type CheckingAccount struct {
	ID       int64     `json:"id"`
	Version  int64     `json:"version"`
	Iban     string    `json:"iban" validate:"notblank"`
	Currency string    `json:"currency" validate:"required"`
	Customer *Customer `json:"customer" validate:"required"`
}

// NewCheckingAccount builds an unpersisted account from submitted data.
func NewCheckingAccount(iban, currency string, customer *Customer) *CheckingAccount {
	return &CheckingAccount{
		Iban:     iban,
		Currency: currency,
		Customer: customer,
	}
}

// WithIdentity returns a persisted copy of the account carrying the
// store-assigned id and version. The receiver is left untouched.
func (a *CheckingAccount) WithIdentity(id, version int64) *CheckingAccount {
	persisted := *a
	persisted.ID = id
	persisted.Version = version
	return &persisted
}

// Persisted reports whether the store has assigned an identity to the account.
func (a *CheckingAccount) Persisted() bool {
	return a.ID != 0 && a.Version != 0
}
