package models

import "errors"

// Domain specific errors shared by handlers and services.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrEmptySearch = errors.New("search needs a query or an image")
)
