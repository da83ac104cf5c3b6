package item

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrMissingFields  = errors.New("title and description are required")
	ErrInvalidPayload = errors.New("invalid payload")
)
