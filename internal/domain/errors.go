package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrSynthesisFailed = errors.New("synthesis failed")
	ErrQueueClosed     = errors.New("queue closed")
)
