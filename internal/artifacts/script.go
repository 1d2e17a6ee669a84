package artifacts

import (
	"encoding/json"
	"strings"
)

// DefaultCueDurationSeconds is applied when a visual cue carries no duration.
const DefaultCueDurationSeconds = 5.0

// DurationToleranceSeconds is how far a script's declared total duration may
// fall below the sum of its scene durations before the script is rejected.
const DurationToleranceSeconds = 0.5

// VisualCue is the visual annotation attached to a script scene.
type VisualCue struct {
	Description     string     `json:"description"`
	VisualType      VisualType `json:"visual_type"`
	Elements        []string   `json:"elements,omitempty"`
	DurationSeconds float64    `json:"duration_seconds"`
}

// UnmarshalJSON decodes the cue, filling DurationSeconds with
// DefaultCueDurationSeconds when the document omits it.
func (c *VisualCue) UnmarshalJSON(data []byte) error {
	type plain VisualCue
	decoded := plain{DurationSeconds: DefaultCueDurationSeconds}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = VisualCue(decoded)
	return nil
}

// Validate checks the cue's structural invariants.
func (c *VisualCue) Validate() error {
	v := check("visual cue")
	if strings.TrimSpace(c.Description) == "" {
		v.addf("description must not be empty")
	}
	if !c.VisualType.Valid() {
		v.addf("visual_type %q is not one of animation/diagram/code/equation/image", c.VisualType)
	}
	if c.DurationSeconds <= 0 {
		v.addf("duration_seconds %g must be > 0", c.DurationSeconds)
	}
	return v.err()
}

// ScriptScene is one scene in a finalized script.
type ScriptScene struct {
	SceneID         SceneID   `json:"scene_id"`
	SceneType       SceneType `json:"scene_type"`
	Title           string    `json:"title"`
	Voiceover       string    `json:"voiceover"`
	VisualCue       VisualCue `json:"visual_cue"`
	DurationSeconds float64   `json:"duration_seconds"`
	Notes           string    `json:"notes,omitempty"`
}

// UnmarshalJSON decodes the scene, filling SceneType with DefaultSceneType
// when the document omits it. The nested cue applies its own defaults.
func (s *ScriptScene) UnmarshalJSON(data []byte) error {
	type plain ScriptScene
	decoded := plain{SceneType: DefaultSceneType}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = ScriptScene(decoded)
	return nil
}

// Validate checks the scene's structural invariants.
func (s *ScriptScene) Validate() error {
	v := check("script scene")
	if s.SceneID.IsZero() {
		v.addf("scene_id must not be empty")
	}
	if !s.SceneType.Valid() {
		v.addf("scene_type %q is not one of hook/context/explanation/insight/conclusion", s.SceneType)
	}
	if strings.TrimSpace(s.Voiceover) == "" {
		v.addf("voiceover must not be empty")
	}
	if s.DurationSeconds <= 0 {
		v.addf("duration_seconds %g must be > 0", s.DurationSeconds)
	}
	v.merge("visual cue", s.VisualCue.Validate())
	return v.err()
}

// Script is the complete narration plus visual-cue sequence for one video.
type Script struct {
	Title                string        `json:"title"`
	TotalDurationSeconds float64       `json:"total_duration_seconds"`
	Scenes               []ScriptScene `json:"scenes"`
	SourceDocument       string        `json:"source_document"`
}

// SceneDurationSum returns the summed duration of all scenes.
func (s *Script) SceneDurationSum() float64 {
	var sum float64
	for i := range s.Scenes {
		sum += s.Scenes[i].DurationSeconds
	}
	return sum
}

// Scene returns the scene with the given ID, or nil.
func (s *Script) Scene(id SceneID) *ScriptScene {
	for i := range s.Scenes {
		if s.Scenes[i].SceneID.Key() == id.Key() {
			return &s.Scenes[i]
		}
	}
	return nil
}

// Validate checks the script and every embedded scene. Scene IDs must be
// unique and the declared total duration must cover the scene durations
// within DurationToleranceSeconds.
func (s *Script) Validate() error {
	v := check("script")
	if strings.TrimSpace(s.Title) == "" {
		v.addf("title must not be empty")
	}
	if len(s.Scenes) == 0 {
		v.addf("scenes must not be empty")
	}
	seen := make(map[string]struct{}, len(s.Scenes))
	for i := range s.Scenes {
		scene := &s.Scenes[i]
		v.merge("scene "+scene.SceneID.String(), scene.Validate())
		key := scene.SceneID.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			v.addf("duplicate scene_id %s", scene.SceneID)
		}
		seen[key] = struct{}{}
	}
	if sum := s.SceneDurationSum(); s.TotalDurationSeconds < sum-DurationToleranceSeconds {
		v.addf("total_duration_seconds %g does not cover scene durations summing to %g", s.TotalDurationSeconds, sum)
	}
	return v.err()
}
