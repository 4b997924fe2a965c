package domain

import "errors"

// ErrDocumentNotFound is returned when a portfolio ID cannot be found in a store.
var ErrDocumentNotFound = errors.New("document not found")

// ErrInvalidID is returned when a portfolio ID is empty or not usable as a storage key.
var ErrInvalidID = errors.New("invalid document id")
