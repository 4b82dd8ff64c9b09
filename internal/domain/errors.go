package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrScanInFlight = errors.New("a tag scan is already being processed")
	ErrUnknownTag   = errors.New("tag is not registered")
	ErrInvalidInput = errors.New("invalid input")
)
