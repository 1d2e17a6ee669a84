package artifacts

import (
	"encoding/json"
	"sort"
	"strings"
)

// AnimationElement is one renderable object inside a storyboard scene.
// AppearAt is relative to the owning scene's start.
type AnimationElement struct {
	ID          string      `json:"id"`
	ElementType ElementType `json:"element_type"`
	Properties  Map         `json:"properties,omitempty"`
	AppearAt    float64     `json:"appear_at"`
	Animation   string      `json:"animation"`
}

// UnmarshalJSON decodes the element, filling Animation with DefaultAnimation
// when the document omits it.
func (e *AnimationElement) UnmarshalJSON(data []byte) error {
	type plain AnimationElement
	decoded := plain{Animation: DefaultAnimation}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*e = AnimationElement(decoded)
	return nil
}

// StoryboardScene is one fully specified rendering scene. Transitions map a
// scene-boundary key to a transition style; AudioPath is set once narration
// audio has been synthesized.
type StoryboardScene struct {
	SceneID           string             `json:"scene_id"`
	TimestampStart    float64            `json:"timestamp_start"`
	TimestampEnd      float64            `json:"timestamp_end"`
	VoiceoverText     string             `json:"voiceover_text"`
	VisualType        VisualType         `json:"visual_type"`
	VisualDescription string             `json:"visual_description"`
	Elements          []AnimationElement `json:"elements,omitempty"`
	Transitions       map[string]string  `json:"transitions,omitempty"`
	AudioPath         string             `json:"audio_path,omitempty"`
}

// Duration returns the scene's span in seconds.
func (s *StoryboardScene) Duration() float64 {
	return s.TimestampEnd - s.TimestampStart
}

// Validate checks the scene and its elements. Element IDs must be unique
// within the scene and every appear_at must fall inside the scene's span.
func (s *StoryboardScene) Validate() error {
	v := check("storyboard scene")
	if strings.TrimSpace(s.SceneID) == "" {
		v.addf("scene_id must not be empty")
	}
	if s.TimestampStart < 0 {
		v.addf("timestamp_start %g must not be negative", s.TimestampStart)
	}
	if s.TimestampEnd <= s.TimestampStart {
		v.addf("timestamp_end %g must be after timestamp_start %g", s.TimestampEnd, s.TimestampStart)
	}
	if !s.VisualType.Valid() {
		v.addf("visual_type %q is not one of animation/diagram/code/equation/image", s.VisualType)
	}
	seen := make(map[string]struct{}, len(s.Elements))
	for i := range s.Elements {
		el := &s.Elements[i]
		if strings.TrimSpace(el.ID) == "" {
			v.addf("element %d: id must not be empty", i)
		} else if _, dup := seen[el.ID]; dup {
			v.addf("duplicate element id %q", el.ID)
		} else {
			seen[el.ID] = struct{}{}
		}
		if !el.ElementType.Valid() {
			v.addf("element %q: element_type %q is not one of shape/text/code/equation/image", el.ID, el.ElementType)
		}
		if el.AppearAt < 0 || el.AppearAt > s.Duration() {
			v.addf("element %q: appear_at %g outside scene span [0,%g]", el.ID, el.AppearAt, s.Duration())
		}
	}
	return v.err()
}

// Storyboard is the complete render-ready plan.
type Storyboard struct {
	Title                string            `json:"title"`
	Scenes               []StoryboardScene `json:"scenes"`
	StyleGuide           Map               `json:"style_guide,omitempty"`
	TotalDurationSeconds float64           `json:"total_duration_seconds"`
}

// SceneIDs returns the set of scene IDs in the storyboard.
func (b *Storyboard) SceneIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(b.Scenes))
	for i := range b.Scenes {
		ids[b.Scenes[i].SceneID] = struct{}{}
	}
	return ids
}

// Validate checks the storyboard and every embedded scene. Scene IDs must be
// unique, scene spans sorted by start must not overlap, and the declared
// total duration must reach at least the last scene's end.
func (b *Storyboard) Validate() error {
	v := check("storyboard")
	if strings.TrimSpace(b.Title) == "" {
		v.addf("title must not be empty")
	}
	if len(b.Scenes) == 0 {
		v.addf("scenes must not be empty")
	}
	seen := make(map[string]struct{}, len(b.Scenes))
	for i := range b.Scenes {
		scene := &b.Scenes[i]
		v.merge("scene "+scene.SceneID, scene.Validate())
		if scene.SceneID == "" {
			continue
		}
		if _, dup := seen[scene.SceneID]; dup {
			v.addf("duplicate scene_id %q", scene.SceneID)
		}
		seen[scene.SceneID] = struct{}{}
	}

	ordered := make([]*StoryboardScene, len(b.Scenes))
	for i := range b.Scenes {
		ordered[i] = &b.Scenes[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TimestampStart < ordered[j].TimestampStart
	})
	var lastEnd float64
	for i, scene := range ordered {
		if i > 0 && scene.TimestampStart < lastEnd {
			v.addf("scene %q starts at %g before previous scene ends at %g", scene.SceneID, scene.TimestampStart, lastEnd)
		}
		if scene.TimestampEnd > lastEnd {
			lastEnd = scene.TimestampEnd
		}
	}
	if len(ordered) > 0 && b.TotalDurationSeconds < lastEnd {
		v.addf("total_duration_seconds %g is shorter than the last scene end %g", b.TotalDurationSeconds, lastEnd)
	}
	return v.err()
}
