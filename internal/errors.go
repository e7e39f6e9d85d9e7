package internal

import "errors"

var (
	ErrNoRecords = errors.New("no records")

	ErrNoActiveCheckout = errors.New("no active checkout for this session")
)
