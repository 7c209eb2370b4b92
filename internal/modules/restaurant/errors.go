package restaurant

import "errors"

var (
	ErrNotFound      = errors.New("restaurant not found")
	ErrAlreadyExists = errors.New("restaurant already exists for this owner")
)
