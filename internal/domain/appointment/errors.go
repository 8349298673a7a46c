package appointment

import "errors"

// Storage-level sentinels. Repositories translate driver errors into these.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)
