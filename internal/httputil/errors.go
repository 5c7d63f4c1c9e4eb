package httputil

import "errors"

var (
	ErrInvalidBody         = errors.New("the request body is not valid JSON")
	ErrRequestBodyEmpty    = errors.New("the request body must not be empty")
	ErrRequestBodyTooLarge = errors.New("the request body is too large")
	ErrInvalidType         = errors.New("has the wrong type")
)
