package service

import (
	"errors"
)

// ErrNoStore is returned when an operation that requires persistence is
// invoked in store-less mode.
var ErrNoStore = errors.New("no database configured")

// ErrNoData is returned when neither the store nor the upstream feed
// could produce a required result and no safe default exists.
var ErrNoData = errors.New("no data available from store or upstream")
