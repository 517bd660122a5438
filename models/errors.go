package models

import "github.com/cockroachdb/errors"

var (
	BadParameterError = errors.New("bad parameter")
	NotFoundError     = errors.New("not found")
	ConflictError     = errors.New("duplicate value")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
