package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrUnresolvedConflicts = errors.New("schedule has unresolved conflicts")
	ErrAssetUnavailable    = errors.New("asset unavailable")
)
