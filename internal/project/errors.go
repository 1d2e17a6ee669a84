package project

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition marks attempts to attach an artifact out of stage
	// order. This is a driver programming error; it is never retried.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPlanNotApproved marks scripting attempts gated behind a plan that is
	// still a draft. Recoverable once the plan is approved.
	ErrPlanNotApproved = errors.New("plan not approved")
	// ErrMissingArtifact marks transitions whose prerequisite artifact has
	// not been attached.
	ErrMissingArtifact = errors.New("missing prerequisite artifact")
)

// TransitionError carries the attempted stage ordering so callers see exactly
// which ordering rule was violated.
type TransitionError struct {
	ProjectID string
	From      Status
	To        Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("project %s: cannot transition to %s from %s", e.ProjectID, e.To, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
