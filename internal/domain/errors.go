package domain

import "errors"

var (
	ErrCurrencyNotAvailable = errors.New("currency not available")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
)
