package snippet

// FailureHandler decides what happens when verification finds a discrepancy.
// Returning a non-nil error aborts model creation; returning nil lets model
// building proceed over the full registry despite the mismatch. That
// fail-open contract is deliberate: handlers that log or collect mismatches
// can keep the pipeline running, while "fail" semantics require returning the
// error.
type FailureHandler interface {
	VerificationFailed(undocumented, missing []string) error
}

// FailureHandlerFunc adapts a function to the FailureHandler interface.
type FailureHandlerFunc func(undocumented, missing []string) error

// VerificationFailed calls fn.
func (fn FailureHandlerFunc) VerificationFailed(undocumented, missing []string) error {
	return fn(undocumented, missing)
}

// FailFast is the default handler: every discrepancy becomes a
// *VerificationError carrying both name sets.
func FailFast() FailureHandler {
	return FailureHandlerFunc(func(undocumented, missing []string) error {
		return &VerificationError{Undocumented: undocumented, Missing: missing}
	})
}
