package testsupport

import (
	"time"

	"docuvid/internal/artifacts"
	"docuvid/internal/plan"
)

// Document returns a minimal valid parsed document.
func Document() *artifacts.ParsedDocument {
	return &artifacts.ParsedDocument{
		Title:      "The Impossible Leap",
		SourceType: artifacts.SourceMarkdown,
		SourcePath: "/tmp/leap.md",
		Sections: []artifacts.Section{
			{Heading: "Introduction", Level: 1, Content: "Why leaps feel impossible."},
			{Heading: "The Mechanism", Level: 2, Content: "How momentum accumulates."},
		},
		RawContent: "# The Impossible Leap\n\nWhy leaps feel impossible.",
	}
}

// Analysis returns a minimal valid content analysis.
func Analysis() *artifacts.ContentAnalysis {
	return &artifacts.ContentAnalysis{
		CoreThesis: "Progress compounds invisibly before it appears suddenly.",
		KeyConcepts: []artifacts.Concept{
			{
				Name:            "compounding",
				Explanation:     "Small gains multiply over time.",
				Complexity:      4,
				VisualPotential: artifacts.PotentialHigh,
			},
			{
				Name:            "threshold effects",
				Explanation:     "Change becomes visible only past a tipping point.",
				Complexity:      6,
				Prerequisites:   []string{"compounding"},
				VisualPotential: artifacts.PotentialMedium,
			},
		},
		TargetAudience:           "curious non-specialists",
		SuggestedDurationSeconds: 180,
		ComplexityScore:          5,
	}
}

// Script returns a minimal valid script with two scenes.
func Script() *artifacts.Script {
	return &artifacts.Script{
		Title:                "The Impossible Leap",
		TotalDurationSeconds: 25,
		SourceDocument:       "/tmp/leap.md",
		Scenes: []artifacts.ScriptScene{
			{
				SceneID:   artifacts.SlugID("the_impossible_leap"),
				SceneType: artifacts.SceneHook,
				Title:     "The Leap",
				Voiceover: "Nothing happens for years. Then everything happens at once.",
				VisualCue: artifacts.VisualCue{
					Description:     "A flat line that suddenly turns vertical",
					VisualType:      artifacts.VisualAnimation,
					DurationSeconds: 10,
				},
				DurationSeconds: 10,
			},
			{
				SceneID:   artifacts.SlugID("the_mechanism"),
				SceneType: artifacts.SceneExplanation,
				Title:     "The Mechanism",
				Voiceover: "Underneath, small gains were compounding the whole time.",
				VisualCue: artifacts.VisualCue{
					Description:     "Stacked bars doubling",
					VisualType:      artifacts.VisualDiagram,
					DurationSeconds: 15,
				},
				DurationSeconds: 15,
			},
		},
	}
}

// Storyboard returns a minimal valid storyboard matching Script's scenes.
func Storyboard() *artifacts.Storyboard {
	return &artifacts.Storyboard{
		Title:                "The Impossible Leap",
		TotalDurationSeconds: 25,
		Scenes: []artifacts.StoryboardScene{
			{
				SceneID:           "the_impossible_leap",
				TimestampStart:    0,
				TimestampEnd:      10,
				VoiceoverText:     "Nothing happens for years. Then everything happens at once.",
				VisualType:        artifacts.VisualAnimation,
				VisualDescription: "A flat line that suddenly turns vertical",
				Elements: []artifacts.AnimationElement{
					{ID: "line", ElementType: artifacts.ElementShape, AppearAt: 0, Animation: artifacts.DefaultAnimation},
				},
			},
			{
				SceneID:           "the_mechanism",
				TimestampStart:    10,
				TimestampEnd:      25,
				VoiceoverText:     "Underneath, small gains were compounding the whole time.",
				VisualType:        artifacts.VisualDiagram,
				VisualDescription: "Stacked bars doubling",
			},
		},
	}
}

// Plan returns a minimal valid draft plan with two scenes.
func Plan() *plan.VideoPlan {
	p := plan.NewDraft(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	p.Title = "The Impossible Leap"
	p.CentralQuestion = "Why does progress arrive all at once?"
	p.TargetAudience = "curious non-specialists"
	p.EstimatedTotalDuration = 180
	p.CoreThesis = "Progress compounds invisibly before it appears suddenly."
	p.KeyConcepts = []string{"compounding", "threshold effects"}
	p.ComplexityScore = 5
	p.VisualStyle = "minimal dark"
	p.SourceDocument = "/tmp/leap.md"
	p.Scenes = []plan.Scene{
		{
			SceneNumber:              1,
			SceneType:                artifacts.SceneHook,
			Title:                    "The Leap",
			ConceptToCover:           "threshold effects",
			VisualApproach:           "flat line turning vertical",
			ASCIIVisual:              "____/|",
			EstimatedDurationSeconds: 30,
			KeyPoints:                []string{"years of nothing", "then everything"},
		},
		{
			SceneNumber:              2,
			SceneType:                artifacts.SceneExplanation,
			Title:                    "The Mechanism",
			ConceptToCover:           "compounding",
			VisualApproach:           "stacked doubling bars",
			ASCIIVisual:              "_+=#",
			EstimatedDurationSeconds: 60,
		},
	}
	return p
}
