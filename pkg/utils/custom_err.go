package utils

import "errors"

var (
	ErrInvalidResponse      = errors.New("quiz answer is not among the question's options")
	ErrEmptyQuizResponses   = errors.New("no quiz responses provided")
	ErrUnknownPersonality   = errors.New("unknown personality type")
	ErrMalformedPreferences = errors.New("malformed trip preferences")
	ErrDestinationNotFound  = errors.New("destination not found")
	ErrInvalidCatalogRecord = errors.New("invalid destination record")
)
