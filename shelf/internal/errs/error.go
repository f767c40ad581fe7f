package errs

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrUserName             = errors.New("username is required")
	ErrUnavailable          = errors.New("no available copies")
	ErrRenewalLimitExceeded = errors.New("renewal limit exceeded")
	ErrRenewalOverdue       = errors.New("overdue rentals cannot be renewed")
	ErrBorrowLimitExceeded  = errors.New("borrow limit exceeded")
	ErrEmptyCart            = errors.New("select books to rent")
	ErrInvalidPeriod        = errors.New("rental period must be positive")
)
