package workflow

import (
	"errors"
	"fmt"

	"velvessa/m/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrEmptyCart          = errors.New("order requires at least one item")
	ErrCustomerRequired   = errors.New("customer name and phone are required")
	ErrNoSession          = errors.New("no active session")
	ErrUserNotFound       = errors.New("user not found")
	ErrStockItemNotFound  = errors.New("stock item not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
)

// AccessDeniedError rejects a login for an account that exists but is
// not approved yet, carrying the account's current status.
type AccessDeniedError struct {
	Status domain.UserStatus
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: your account is %s, contact an admin", e.Status)
}
