package inin

import "errors"

// ErrInvalidNationalID is returned by Parse for any input that is not a
// well-formed Iranian national ID. Failure reasons are deliberately not
// distinguished; callers only learn that the input is invalid.
var ErrInvalidNationalID = errors.New("invalid iranian national id number")
