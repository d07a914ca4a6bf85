package encode

import "errors"

// ErrSymbolNotInAlphabet indicates a word offered to AcceptAtLeastOneOf or
// Reject contains a symbol outside the Invariant's used alphabet.
var ErrSymbolNotInAlphabet = errors.New("encode: symbol not in invariant's used alphabet")
