package database

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// NotFound reports whether err is one of the absence sentinels, as
// opposed to an actual storage failure.
func NotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (class 23505), e.g. a duplicate user email.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
