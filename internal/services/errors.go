package services

import (
	"errors"
	"fmt"
	"strings"

	"docuvid/internal/artifacts"
	"docuvid/internal/project"
)

var (
	ErrExternalTool  = errors.New("external tool error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("timeout")
	ErrTransient     = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later disposition classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Disposition classifies how the driver should leave a project after a stage
// failure.
type Disposition string

const (
	// DispositionFailed marks a failure the driver may surface for retry via
	// a fresh project.
	DispositionFailed Disposition = "failed"
	// DispositionReview marks a failure needing manual intervention: bad
	// artifacts, ordering bugs, configuration problems.
	DispositionReview Disposition = "needs_review"
)

// FailureDisposition maps a stage error to the disposition the driver should
// persist after the stage fails. Artifact validation failures, sequencing
// bugs, and configuration problems need a human; everything else is a plain
// failure.
func FailureDisposition(err error) Disposition {
	switch {
	case artifacts.IsValidation(err),
		errors.Is(err, project.ErrInvalidTransition),
		errors.Is(err, project.ErrMissingArtifact),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrNotFound):
		return DispositionReview
	default:
		return DispositionFailed
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
