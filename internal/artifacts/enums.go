package artifacts

import "strings"

// SourceType identifies the kind of source document a project starts from.
type SourceType string

const (
	SourceMarkdown SourceType = "markdown"
	SourcePDF      SourceType = "pdf"
	SourceURL      SourceType = "url"
	SourceText     SourceType = "text"
)

var sourceTypes = map[SourceType]struct{}{
	SourceMarkdown: {},
	SourcePDF:      {},
	SourceURL:      {},
	SourceText:     {},
}

// ParseSourceType converts a string into a known SourceType.
func ParseSourceType(value string) (SourceType, bool) {
	normalized := SourceType(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := sourceTypes[normalized]
	return normalized, ok
}

// Valid reports whether the source type is one of the known values.
func (t SourceType) Valid() bool {
	_, ok := sourceTypes[t]
	return ok
}

// SceneType classifies the narrative role of a scene.
type SceneType string

const (
	SceneHook        SceneType = "hook"
	SceneContext     SceneType = "context"
	SceneExplanation SceneType = "explanation"
	SceneInsight     SceneType = "insight"
	SceneConclusion  SceneType = "conclusion"
)

var sceneTypes = map[SceneType]struct{}{
	SceneHook:        {},
	SceneContext:     {},
	SceneExplanation: {},
	SceneInsight:     {},
	SceneConclusion:  {},
}

// Valid reports whether the scene type is one of the known values.
func (t SceneType) Valid() bool {
	_, ok := sceneTypes[t]
	return ok
}

// DefaultSceneType is applied when a script scene does not declare its
// narrative role.
const DefaultSceneType = SceneExplanation

// VisualType classifies the visual treatment of a scene or cue.
type VisualType string

const (
	VisualAnimation VisualType = "animation"
	VisualDiagram   VisualType = "diagram"
	VisualCode      VisualType = "code"
	VisualEquation  VisualType = "equation"
	VisualImage     VisualType = "image"
)

var visualTypes = map[VisualType]struct{}{
	VisualAnimation: {},
	VisualDiagram:   {},
	VisualCode:      {},
	VisualEquation:  {},
	VisualImage:     {},
}

// Valid reports whether the visual type is one of the known values.
func (t VisualType) Valid() bool {
	_, ok := visualTypes[t]
	return ok
}

// ElementType classifies a renderable object inside a storyboard scene.
type ElementType string

const (
	ElementShape    ElementType = "shape"
	ElementText     ElementType = "text"
	ElementCode     ElementType = "code"
	ElementEquation ElementType = "equation"
	ElementImage    ElementType = "image"
)

var elementTypes = map[ElementType]struct{}{
	ElementShape:    {},
	ElementText:     {},
	ElementCode:     {},
	ElementEquation: {},
	ElementImage:    {},
}

// Valid reports whether the element type is one of the known values.
func (t ElementType) Valid() bool {
	_, ok := elementTypes[t]
	return ok
}

// VisualPotential grades how well a concept lends itself to visualization.
type VisualPotential string

const (
	PotentialHigh   VisualPotential = "high"
	PotentialMedium VisualPotential = "medium"
	PotentialLow    VisualPotential = "low"
)

var visualPotentials = map[VisualPotential]struct{}{
	PotentialHigh:   {},
	PotentialMedium: {},
	PotentialLow:    {},
}

// Valid reports whether the potential grade is one of the known values.
func (p VisualPotential) Valid() bool {
	_, ok := visualPotentials[p]
	return ok
}

// DefaultVisualPotential is applied when a concept does not grade itself.
const DefaultVisualPotential = PotentialMedium

// DefaultAnimation is the animation style applied when an element does not
// specify one.
const DefaultAnimation = "fade_in"
