package apperror

import "errors"

var (
	ErrWrongLevel     = errors.New("wrong level")
	ErrCellTaken      = errors.New("cell is already taken")
	ErrInvalidCell    = errors.New("invalid cell position")
	ErrRecordNotFound = errors.New("record not found")
)
