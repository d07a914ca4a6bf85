package cegis

import (
	"errors"
	"fmt"

	"github.com/hyperltl/advicebits/alphabet"
)

// Sentinel errors for the fatal outcomes of Run. ClauseExplosionGuard
// firing is deliberately not among them: it is internal and non-fatal,
// never escaping the loop as an error value.
var (
	// ErrNoSolutionWithinBound indicates solver enumeration exhausted
	// without a model that passed every semantic check.
	ErrNoSolutionWithinBound = errors.New("cegis: solver enumeration exhausted with no certificate within the given state bound")

	// ErrCertificateRejected indicates a user-supplied A or T failed a
	// semantic check (so no refinement is possible — the certificate
	// itself, not a synthesis candidate, is wrong).
	ErrCertificateRejected = errors.New("cegis: supplied certificate failed a semantic check")

	// ErrTransitionConditionNotImplemented indicates a Checker (such as
	// defaultChecker) does not implement CheckTransitionCondition because
	// it requires the out-of-scope formula frontend's eventuality
	// transducer and trace-quantifier semantics.
	ErrTransitionConditionNotImplemented = errors.New("cegis: transition-condition check requires an injected Checker")
)

// CertificateRejectedError names which check failed and the witness it
// produced.
type CertificateRejectedError struct {
	Check   string
	Witness alphabet.Word
}

// Error implements the error interface.
func (e *CertificateRejectedError) Error() string {
	return fmt.Sprintf("cegis: certificate rejected: %s (witness %v)", e.Check, e.Witness)
}

// Unwrap allows errors.Is(err, ErrCertificateRejected).
func (e *CertificateRejectedError) Unwrap() error { return ErrCertificateRejected }
