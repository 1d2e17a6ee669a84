package artifacts

import (
	"encoding/json"
	"strings"
)

// Complexity scores are graded on a fixed 1..10 scale.
const (
	ComplexityMin = 1
	ComplexityMax = 10
)

// Concept is one extractable idea from the document. Prerequisites reference
// other concepts by name; the referenced concept may not exist yet when the
// record is built, so the link stays a soft lookup key rather than a pointer.
type Concept struct {
	Name            string          `json:"name"`
	Explanation     string          `json:"explanation"`
	Complexity      int             `json:"complexity"`
	Prerequisites   []string        `json:"prerequisites,omitempty"`
	Analogies       []string        `json:"analogies,omitempty"`
	VisualPotential VisualPotential `json:"visual_potential"`
}

// UnmarshalJSON decodes the concept, filling VisualPotential with
// DefaultVisualPotential when the document omits it.
func (c *Concept) UnmarshalJSON(data []byte) error {
	type plain Concept
	decoded := plain{VisualPotential: DefaultVisualPotential}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Concept(decoded)
	return nil
}

// Validate checks the concept's structural invariants.
func (c *Concept) Validate() error {
	v := check("concept")
	if strings.TrimSpace(c.Name) == "" {
		v.addf("name must not be empty")
	}
	if c.Complexity < ComplexityMin || c.Complexity > ComplexityMax {
		v.addf("complexity %d out of range [%d,%d]", c.Complexity, ComplexityMin, ComplexityMax)
	}
	if !c.VisualPotential.Valid() {
		v.addf("visual_potential %q is not one of high/medium/low", c.VisualPotential)
	}
	return v.err()
}

// ContentAnalysis is the analyzer stage's document-level synthesis.
type ContentAnalysis struct {
	CoreThesis               string    `json:"core_thesis"`
	KeyConcepts              []Concept `json:"key_concepts"`
	TargetAudience           string    `json:"target_audience"`
	SuggestedDurationSeconds int       `json:"suggested_duration_seconds"`
	ComplexityScore          int       `json:"complexity_score"`
}

// Validate checks the analysis and every embedded concept.
func (a *ContentAnalysis) Validate() error {
	v := check("content analysis")
	if strings.TrimSpace(a.CoreThesis) == "" {
		v.addf("core_thesis must not be empty")
	}
	if len(a.KeyConcepts) == 0 {
		v.addf("key_concepts must not be empty")
	}
	if a.SuggestedDurationSeconds <= 0 {
		v.addf("suggested_duration_seconds %d must be > 0", a.SuggestedDurationSeconds)
	}
	if a.ComplexityScore < ComplexityMin || a.ComplexityScore > ComplexityMax {
		v.addf("complexity_score %d out of range [%d,%d]", a.ComplexityScore, ComplexityMin, ComplexityMax)
	}
	for i := range a.KeyConcepts {
		v.merge("concept "+a.KeyConcepts[i].Name, a.KeyConcepts[i].Validate())
	}
	return v.err()
}
