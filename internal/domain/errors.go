package domain

import "errors"

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrNegativeCount   = errors.New("count must not be negative")
	ErrInvalidLevel    = errors.New("level must be between 0 and 4")
	ErrDuplicateDate   = errors.New("duplicate date")
	ErrProjectNotFound = errors.New("project not found")
)
