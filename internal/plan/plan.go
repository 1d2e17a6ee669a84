package plan

import (
	"errors"
	"strings"
	"time"

	"docuvid/internal/artifacts"
)

// Status represents the lifecycle of a video plan.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
)

var (
	// ErrAlreadyApproved is returned when Approve is invoked on a plan that
	// has already passed the gate.
	ErrAlreadyApproved = errors.New("plan already approved")
	// ErrEmptyPlan is returned when Approve is invoked on a plan with no
	// scenes.
	ErrEmptyPlan = errors.New("plan has no scenes")
)

// Scene is one planned scene, sketched before script generation.
type Scene struct {
	SceneNumber              int                 `json:"scene_number"`
	SceneType                artifacts.SceneType `json:"scene_type"`
	Title                    string              `json:"title"`
	ConceptToCover           string              `json:"concept_to_cover"`
	VisualApproach           string              `json:"visual_approach"`
	ASCIIVisual              string              `json:"ascii_visual"`
	EstimatedDurationSeconds float64             `json:"estimated_duration_seconds"`
	KeyPoints                []string            `json:"key_points,omitempty"`
}

// VideoPlan is the human-reviewable draft of a video, produced after analysis
// and gating script generation. Draft plans may be replaced freely; approval
// is one-way and stamps ApprovedAt.
type VideoPlan struct {
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	Title                  string `json:"title"`
	CentralQuestion        string `json:"central_question"`
	TargetAudience         string `json:"target_audience"`
	EstimatedTotalDuration float64 `json:"estimated_total_duration_seconds"`

	CoreThesis      string   `json:"core_thesis"`
	KeyConcepts     []string `json:"key_concepts"`
	ComplexityScore int      `json:"complexity_score"`

	Scenes      []Scene `json:"scenes"`
	VisualStyle string  `json:"visual_style"`

	SourceDocument string `json:"source_document"`
	UserNotes      string `json:"user_notes,omitempty"`
}

// NewDraft builds a draft plan stamped with the given creation time.
func NewDraft(createdAt time.Time) *VideoPlan {
	return &VideoPlan{Status: StatusDraft, CreatedAt: createdAt.UTC()}
}

// Approved reports whether the plan has passed the approval gate.
func (p *VideoPlan) Approved() bool {
	return p.Status == StatusApproved
}

// Approve transitions the plan from draft to approved, stamping ApprovedAt
// with the action's timestamp. The transition is one-way: a second call
// fails with ErrAlreadyApproved. Plans with no scenes fail with ErrEmptyPlan.
func (p *VideoPlan) Approve(at time.Time) error {
	if p.Status == StatusApproved {
		return ErrAlreadyApproved
	}
	if len(p.Scenes) == 0 {
		return ErrEmptyPlan
	}
	if err := p.Validate(); err != nil {
		return err
	}
	stamped := at.UTC()
	p.Status = StatusApproved
	p.ApprovedAt = &stamped
	return nil
}

// EstimatedSceneDurationSum returns the summed estimated duration of all
// planned scenes.
func (p *VideoPlan) EstimatedSceneDurationSum() float64 {
	var sum float64
	for i := range p.Scenes {
		sum += p.Scenes[i].EstimatedDurationSeconds
	}
	return sum
}

// Validate checks the plan's structural invariants: bounded complexity,
// strictly increasing scene numbers, positive durations, and the
// status/ApprovedAt pairing.
func (p *VideoPlan) Validate() error {
	v := planCheck()
	switch p.Status {
	case StatusDraft:
		if p.ApprovedAt != nil {
			v.addf("approved_at must be null while status is draft")
		}
	case StatusApproved:
		if p.ApprovedAt == nil {
			v.addf("approved_at must be set once status is approved")
		}
	default:
		v.addf("status %q is not one of draft/approved", p.Status)
	}
	if strings.TrimSpace(p.Title) == "" {
		v.addf("title must not be empty")
	}
	if p.ComplexityScore < artifacts.ComplexityMin || p.ComplexityScore > artifacts.ComplexityMax {
		v.addf("complexity_score %d out of range [%d,%d]", p.ComplexityScore, artifacts.ComplexityMin, artifacts.ComplexityMax)
	}
	lastNumber := 0
	for i := range p.Scenes {
		scene := &p.Scenes[i]
		if scene.SceneNumber <= lastNumber {
			v.addf("scene %d: scene_number %d must be strictly increasing (previous %d)", i, scene.SceneNumber, lastNumber)
		}
		lastNumber = scene.SceneNumber
		if !scene.SceneType.Valid() {
			v.addf("scene %d: scene_type %q is not one of hook/context/explanation/insight/conclusion", scene.SceneNumber, scene.SceneType)
		}
		if scene.EstimatedDurationSeconds <= 0 {
			v.addf("scene %d: estimated_duration_seconds %g must be > 0", scene.SceneNumber, scene.EstimatedDurationSeconds)
		}
	}
	return v.err()
}
