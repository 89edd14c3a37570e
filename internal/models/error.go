package models

import "errors"

var (
	ErrConflictData  = errors.New("data conflicts with existing data")
	ErrDataNotFound  = errors.New("data not found")
	ErrValidation    = errors.New("validation failed")
	ErrInternalError = errors.New("internal error")
)
