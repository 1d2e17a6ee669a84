// Package planfile renders draft video plans to human-editable YAML review
// files and reads them back.
//
// The review file is the artifact a user actually looks at before approving
// a plan: scene-by-scene titles, visual approaches, ASCII layout sketches,
// and a free-text notes field. Edits to notes and scene text survive the
// round trip; structural fields (status, timestamps) are owned by the store
// and ignored on read.
package planfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"docuvid/internal/artifacts"
	"docuvid/internal/plan"
)

type sceneDoc struct {
	SceneNumber    int      `yaml:"scene"`
	SceneType      string   `yaml:"type"`
	Title          string   `yaml:"title"`
	Concept        string   `yaml:"concept"`
	VisualApproach string   `yaml:"visual_approach"`
	Layout         string   `yaml:"layout,omitempty"`
	Seconds        float64  `yaml:"seconds"`
	KeyPoints      []string `yaml:"key_points,omitempty"`
}

type planDoc struct {
	Title           string     `yaml:"title"`
	CentralQuestion string     `yaml:"central_question"`
	Audience        string     `yaml:"audience"`
	TotalSeconds    float64    `yaml:"total_seconds"`
	Thesis          string     `yaml:"thesis"`
	Concepts        []string   `yaml:"concepts,omitempty"`
	Complexity      int        `yaml:"complexity"`
	VisualStyle     string     `yaml:"visual_style"`
	Scenes          []sceneDoc `yaml:"scenes"`
	Notes           string     `yaml:"notes,omitempty"`
}

// Write renders a draft plan to a YAML review file, one per project.
func Write(dir, projectID string, p *plan.VideoPlan) (string, error) {
	doc := planDoc{
		Title:           p.Title,
		CentralQuestion: p.CentralQuestion,
		Audience:        p.TargetAudience,
		TotalSeconds:    p.EstimatedTotalDuration,
		Thesis:          p.CoreThesis,
		Concepts:        p.KeyConcepts,
		Complexity:      p.ComplexityScore,
		VisualStyle:     p.VisualStyle,
		Notes:           p.UserNotes,
	}
	for i := range p.Scenes {
		scene := &p.Scenes[i]
		doc.Scenes = append(doc.Scenes, sceneDoc{
			SceneNumber:    scene.SceneNumber,
			SceneType:      string(scene.SceneType),
			Title:          scene.Title,
			Concept:        scene.ConceptToCover,
			VisualApproach: scene.VisualApproach,
			Layout:         scene.ASCIIVisual,
			Seconds:        scene.EstimatedDurationSeconds,
			KeyPoints:      scene.KeyPoints,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("render plan: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plan review directory: %w", err)
	}
	path := filepath.Join(dir, projectID+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write plan file: %w", err)
	}
	return path, nil
}

// Read loads a possibly-edited review file back into a draft plan. The
// returned plan keeps the given creation time and draft status; approval
// happens through the store, never through file edits.
func Read(path string, createdAt time.Time) (*plan.VideoPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	var doc planDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}

	p := plan.NewDraft(createdAt)
	p.Title = doc.Title
	p.CentralQuestion = doc.CentralQuestion
	p.TargetAudience = doc.Audience
	p.EstimatedTotalDuration = doc.TotalSeconds
	p.CoreThesis = doc.Thesis
	p.KeyConcepts = doc.Concepts
	p.ComplexityScore = doc.Complexity
	p.VisualStyle = doc.VisualStyle
	p.UserNotes = doc.Notes
	for _, scene := range doc.Scenes {
		p.Scenes = append(p.Scenes, plan.Scene{
			SceneNumber:              scene.SceneNumber,
			SceneType:                artifacts.SceneType(scene.SceneType),
			Title:                    scene.Title,
			ConceptToCover:           scene.Concept,
			VisualApproach:           scene.VisualApproach,
			ASCIIVisual:              scene.Layout,
			EstimatedDurationSeconds: scene.Seconds,
			KeyPoints:                scene.KeyPoints,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
