package service

import (
	"net/http"

	"github.com/VladPetriv/busbooker/pkg/errs"
)

var (
	// ErrSeatNotFound happens when seat with the given id does not exist.
	ErrSeatNotFound = errs.NewWithStatus("seat not found", http.StatusNotFound)
	// ErrSeatNotAvailable happens when seat was already taken.
	ErrSeatNotAvailable = errs.NewWithStatus("seat is not available", http.StatusConflict)
	// ErrPaymentFailed happens when payment was rejected.
	ErrPaymentFailed = errs.NewWithStatus("Payment failed. Please try again.", http.StatusBadRequest)
	// ErrPaymentNotFound happens when there is no payment with the given transaction id.
	ErrPaymentNotFound = errs.NewWithStatus("payment not found", http.StatusNotFound)
	// ErrRoutesNotFound happens when there are no routes at all.
	ErrRoutesNotFound = errs.NewWithStatus("routes not found", http.StatusNotFound)
)
