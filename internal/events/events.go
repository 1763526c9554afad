package events

import (
	"time"

	"github.com/emmanueldev/checking-account/internal/models"
)

// Event types
const (
	AccountOpened = "opened"
)

// CheckingAccountTopic is the stream every checking account event goes to.
const CheckingAccountTopic = "checking_account_event"

// AccountEvent records a state change of a checking account. It is built once
// per successful opening and handed straight to the publisher; the service
// never persists it.
type AccountEvent struct {
	Type      string                  `json:"type"`
	Timestamp time.Time               `json:"timestamp"`
	Account   *models.CheckingAccount `json:"account"`
}

// NewAccountEvent stamps an event of the given type with the current time.
func NewAccountEvent(eventType string, account *models.CheckingAccount) AccountEvent {
	return AccountEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Account:   account,
	}
}
