package artifacts_test

import (
	"encoding/json"
	"strings"
	"testing"

	"docuvid/internal/artifacts"
	"docuvid/internal/testsupport"
)

func boardScene(id string, start, end float64) artifacts.StoryboardScene {
	return artifacts.StoryboardScene{
		SceneID:           id,
		TimestampStart:    start,
		TimestampEnd:      end,
		VoiceoverText:     "narration for " + id,
		VisualType:        artifacts.VisualDiagram,
		VisualDescription: "visual for " + id,
	}
}

func TestStoryboardAcceptsAdjacentScenes(t *testing.T) {
	board := &artifacts.Storyboard{
		Title:                "Adjacent",
		TotalDurationSeconds: 10,
		Scenes: []artifacts.StoryboardScene{
			boardScene("intro", 0, 5),
			boardScene("body", 5, 10),
		},
	}
	if err := board.Validate(); err != nil {
		t.Fatalf("scenes meeting exactly at a boundary must validate, got %v", err)
	}
}

func TestStoryboardRejectsOverlappingScenes(t *testing.T) {
	board := &artifacts.Storyboard{
		Title:                "Overlap",
		TotalDurationSeconds: 10,
		Scenes: []artifacts.StoryboardScene{
			boardScene("intro", 0, 5),
			boardScene("body", 3, 8),
		},
	}
	err := board.Validate()
	if err == nil {
		t.Fatal("expected overlapping scene spans to be rejected")
	}
	if !strings.Contains(err.Error(), "before previous scene ends") {
		t.Fatalf("unexpected violation message: %v", err)
	}
}

func TestStoryboardOverlapCheckedInTimestampOrder(t *testing.T) {
	// Scene order in the slice is not span order; the overlap must still be
	// caught after sorting by start time.
	board := &artifacts.Storyboard{
		Title:                "Unsorted",
		TotalDurationSeconds: 12,
		Scenes: []artifacts.StoryboardScene{
			boardScene("close", 8, 12),
			boardScene("intro", 0, 5),
			boardScene("body", 4, 8),
		},
	}
	if err := board.Validate(); err == nil {
		t.Fatal("expected overlap between intro and body to be detected")
	}
}

func TestStoryboardRejectsShortTotalDuration(t *testing.T) {
	board := &artifacts.Storyboard{
		Title:                "Short",
		TotalDurationSeconds: 9,
		Scenes: []artifacts.StoryboardScene{
			boardScene("intro", 0, 5),
			boardScene("body", 5, 10),
		},
	}
	if err := board.Validate(); err == nil {
		t.Fatal("expected declared total below the last scene end to be rejected")
	}
}

func TestStoryboardSceneElementAppearAtBounds(t *testing.T) {
	scene := boardScene("intro", 0, 5)
	scene.Elements = []artifacts.AnimationElement{
		{ID: "title", ElementType: artifacts.ElementText, AppearAt: 5, Animation: artifacts.DefaultAnimation},
	}
	if err := scene.Validate(); err != nil {
		t.Fatalf("appear_at equal to the scene span must be accepted, got %v", err)
	}

	scene.Elements[0].AppearAt = 5.1
	if err := scene.Validate(); err == nil {
		t.Fatal("expected appear_at past the scene span to be rejected")
	}
}

func TestAnimationElementDecodeDefaultsAnimation(t *testing.T) {
	var element artifacts.AnimationElement
	if err := json.Unmarshal([]byte(`{"id":"line","element_type":"shape","appear_at":1}`), &element); err != nil {
		t.Fatalf("decode element: %v", err)
	}
	if element.Animation != artifacts.DefaultAnimation {
		t.Fatalf("expected omitted animation to default to %q, got %q", artifacts.DefaultAnimation, element.Animation)
	}

	if err := json.Unmarshal([]byte(`{"id":"line","element_type":"shape","animation":"slide_in"}`), &element); err != nil {
		t.Fatalf("decode element: %v", err)
	}
	if element.Animation != "slide_in" {
		t.Fatalf("expected declared animation to survive decode, got %q", element.Animation)
	}
}

func TestStoryboardSceneRejectsInvertedSpan(t *testing.T) {
	scene := boardScene("intro", 5, 5)
	if err := scene.Validate(); err == nil {
		t.Fatal("expected zero-length span to be rejected")
	}
}

func TestGeneratedAssetsValidateForRejectsUnknownScenes(t *testing.T) {
	board := testsupport.Storyboard()

	assets := artifacts.GeneratedAssets{
		AudioPaths: map[string]string{
			"the_impossible_leap": "/tmp/assets/leap.wav",
			"outro":               "/tmp/assets/outro.wav",
		},
	}
	err := assets.ValidateFor(board)
	if err == nil {
		t.Fatal("expected asset for unknown scene to be rejected")
	}
	if !strings.Contains(err.Error(), `"outro"`) {
		t.Fatalf("violation should name the foreign key, got %v", err)
	}

	delete(assets.AudioPaths, "outro")
	if err := assets.ValidateFor(board); err != nil {
		t.Fatalf("subset of storyboard scenes must be accepted, got %v", err)
	}
}

func TestGeneratedAssetsValidateForWithoutStoryboard(t *testing.T) {
	var assets artifacts.GeneratedAssets
	if !assets.Empty() {
		t.Fatal("zero-value assets should be empty")
	}
	if err := assets.ValidateFor(nil); err != nil {
		t.Fatalf("empty assets are fine without a storyboard, got %v", err)
	}

	assets.ImagePaths = map[string]string{"intro": "/tmp/assets/intro.png"}
	if err := assets.ValidateFor(nil); err == nil {
		t.Fatal("expected assets without an owning storyboard to be rejected")
	}
}
