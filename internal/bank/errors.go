package bank

import "errors"

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInvalidCustomer    = errors.New("invalid customer")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrNegativeAmount     = errors.New("initial amount must not be negative")
)
