package artifacts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is the marker every ValidationError unwraps to, so callers can
// classify artifact rejections with errors.Is without inspecting the
// violation list.
var ErrInvalid = errors.New("invalid artifact")

// ValidationError reports the structural invariants a candidate artifact
// violates. Validation is total: all violations are collected rather than
// stopping at the first.
type ValidationError struct {
	Artifact   string
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%s: %s", e.Artifact, e.Violations[0])
	}
	return fmt.Sprintf("%s: %d invariants violated: %s", e.Artifact, len(e.Violations), strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// IsValidation reports whether err originated from artifact validation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// violations accumulates invariant failures for one artifact.
type violations struct {
	artifact string
	found    []string
}

func check(artifact string) *violations {
	return &violations{artifact: artifact}
}

func (v *violations) addf(format string, args ...any) {
	v.found = append(v.found, fmt.Sprintf(format, args...))
}

// merge folds a nested artifact's validation result in under a prefix.
func (v *violations) merge(prefix string, err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		for _, violation := range ve.Violations {
			v.found = append(v.found, prefix+": "+violation)
		}
		return
	}
	v.found = append(v.found, prefix+": "+err.Error())
}

func (v *violations) err() error {
	if len(v.found) == 0 {
		return nil
	}
	return &ValidationError{Artifact: v.artifact, Violations: v.found}
}
