package snippet

import (
	"fmt"
	"strings"
)

// VerificationError reports that the declared and observed parameter names do
// not correspond. Both slices are sorted so messages are deterministic.
type VerificationError struct {
	// Undocumented holds names present in the interaction but not declared.
	Undocumented []string
	// Missing holds declared names absent from the interaction.
	Missing []string
}

func (e *VerificationError) Error() string {
	var parts []string
	if len(e.Undocumented) > 0 {
		parts = append(parts, fmt.Sprintf("undocumented parameters [%s]", strings.Join(e.Undocumented, ", ")))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing parameters [%s]", strings.Join(e.Missing, ", ")))
	}
	if len(parts) == 0 {
		return "snippet: parameter verification failed"
	}
	return "snippet: " + strings.Join(parts, " and ")
}

// InternalConsistencyError signals that the defensive post-verification
// equality check failed. It indicates a defect in the set-difference logic
// rather than bad input, and should be unreachable.
type InternalConsistencyError struct {
	Actual   []string
	Expected []string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("snippet: internal consistency violation: actual [%s] != expected [%s] despite empty differences",
		strings.Join(e.Actual, ", "), strings.Join(e.Expected, ", "))
}
