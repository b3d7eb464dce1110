package repository

import "errors"

// ErrNotFound reports that a lookup matched zero rows. It is deliberately
// distinct from a failed store call: zero rows is a normal outcome, a failed
// call is not.
var ErrNotFound = errors.New("not found")
