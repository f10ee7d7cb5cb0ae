package services

import "errors"

// ErrUserNotFound is the business outcome of referencing a user id that does
// not exist. It is not a fault.
var ErrUserNotFound = errors.New("user not found")

// PersistenceError wraps a failure reported by the store: a malformed id, a
// rejected document, a timeout or a lost connection.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

