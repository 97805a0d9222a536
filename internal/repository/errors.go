package repository

import "errors"

// ErrNotFound marks lookups that matched no row. Callers branch on it with
// errors.Is; delete/toggle paths treat it as a normal alternate outcome.
var ErrNotFound = errors.New("not found")
