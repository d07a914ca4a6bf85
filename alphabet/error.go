package alphabet

import "errors"

// ErrWidthMismatch indicates a symbol's width does not match the width
// expected by its symbol map.
var ErrWidthMismatch = errors.New("alphabet: symbol width mismatch")
