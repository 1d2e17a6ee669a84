package artifacts_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"docuvid/internal/artifacts"
	"docuvid/internal/testsupport"
)

func TestConceptComplexityBounds(t *testing.T) {
	concept := artifacts.Concept{
		Name:            "recursion",
		Explanation:     "functions calling themselves",
		VisualPotential: artifacts.PotentialHigh,
	}

	for _, complexity := range []int{1, 10} {
		concept.Complexity = complexity
		if err := concept.Validate(); err != nil {
			t.Fatalf("complexity %d should be accepted: %v", complexity, err)
		}
	}
	for _, complexity := range []int{0, 11, -3} {
		concept.Complexity = complexity
		if err := concept.Validate(); err == nil {
			t.Fatalf("complexity %d should be rejected", complexity)
		}
	}
}

func TestConceptDecodeDefaultsVisualPotential(t *testing.T) {
	var concept artifacts.Concept
	raw := `{"name":"recursion","explanation":"functions calling themselves","complexity":4}`
	if err := json.Unmarshal([]byte(raw), &concept); err != nil {
		t.Fatalf("decode concept: %v", err)
	}
	if concept.VisualPotential != artifacts.DefaultVisualPotential {
		t.Fatalf("expected omitted visual_potential to default to %q, got %q", artifacts.DefaultVisualPotential, concept.VisualPotential)
	}
	if err := concept.Validate(); err != nil {
		t.Fatalf("expected defaulted concept to validate, got %v", err)
	}

	if err := json.Unmarshal([]byte(`{"name":"recursion","complexity":4,"visual_potential":"low"}`), &concept); err != nil {
		t.Fatalf("decode concept: %v", err)
	}
	if concept.VisualPotential != artifacts.PotentialLow {
		t.Fatalf("expected declared visual_potential to survive decode, got %q", concept.VisualPotential)
	}
}

func TestContentAnalysisComplexityScoreBounds(t *testing.T) {
	analysis := testsupport.Analysis()

	analysis.ComplexityScore = 0
	if err := analysis.Validate(); err == nil {
		t.Fatal("complexity_score 0 should be rejected")
	}
	analysis.ComplexityScore = 11
	if err := analysis.Validate(); err == nil {
		t.Fatal("complexity_score 11 should be rejected")
	}
	analysis.ComplexityScore = 10
	if err := analysis.Validate(); err != nil {
		t.Fatalf("complexity_score 10 should be accepted: %v", err)
	}
}

func TestContentAnalysisNestedConceptViolationsCarryConceptName(t *testing.T) {
	analysis := testsupport.Analysis()
	analysis.KeyConcepts[1].Complexity = 42
	analysis.KeyConcepts[1].VisualPotential = "extreme"

	err := analysis.Validate()
	if err == nil {
		t.Fatal("expected nested concept violations to fail the analysis")
	}
	var ve *artifacts.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Violations) != 2 {
		t.Fatalf("expected both concept violations, got %v", ve.Violations)
	}
	for _, violation := range ve.Violations {
		if !strings.Contains(violation, "threshold effects") {
			t.Fatalf("violation %q missing concept name prefix", violation)
		}
	}
}

func TestContentAnalysisRequiresConcepts(t *testing.T) {
	analysis := testsupport.Analysis()
	analysis.KeyConcepts = nil
	if err := analysis.Validate(); err == nil {
		t.Fatal("expected analysis without key concepts to be rejected")
	}
}
