package models

import (
	"errors"
	"fmt"
)

// ErrAccountAlreadyOpened rejects a second account for the same customer.
// A business-rule rejection, not a system fault; never retried.
var ErrAccountAlreadyOpened = errors.New("Account already opened")

// Violation is a single field-level validation failure.
type Violation struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

// ViolationError aggregates every structural rule the submitted account
// breaks, in rule declaration order.
type ViolationError struct {
	Message    string
	Violations []Violation
}

func (e *ViolationError) Error() string {
	return e.Message
}

// StorageError wraps a store read or write failure with its underlying cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure on %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
