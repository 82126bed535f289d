package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrAlreadySponsored = errors.New("child already sponsored")
)
