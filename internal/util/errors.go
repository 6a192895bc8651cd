package util

import "errors"

var (
	ErrEmptyHistory = errors.New("no active records to analyze")
)
