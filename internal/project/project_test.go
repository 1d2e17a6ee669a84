package project_test

import (
	"errors"
	"testing"
	"time"

	"docuvid/internal/artifacts"
	"docuvid/internal/project"
	"docuvid/internal/testsupport"
)

func TestProjectAdvancesThroughEveryStage(t *testing.T) {
	proj := project.New("proj-1", "/tmp/leap.md")
	if proj.Status != project.StatusInitialized {
		t.Fatalf("new project should be initialized, got %s", proj.Status)
	}

	lastIndex := proj.Status.Index()
	advance := func(name string, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if idx := proj.Status.Index(); idx != lastIndex+1 {
			t.Fatalf("%s: status %s jumped from index %d to %d", name, proj.Status, lastIndex, idx)
		}
		lastIndex = proj.Status.Index()
		if err := proj.Validate(); err != nil {
			t.Fatalf("%s: project invalid after transition: %v", name, err)
		}
	}

	advance("parse", proj.AttachParsedDocument(testsupport.Document()))
	advance("analyze", proj.AttachAnalysis(testsupport.Analysis()))
	advance("script", proj.AttachScript(testsupport.Script(), nil))
	advance("storyboard", proj.AttachStoryboard(testsupport.Storyboard()))

	assets := artifacts.GeneratedAssets{
		AudioPaths: map[string]string{
			"the_impossible_leap": "/tmp/assets/leap.wav",
			"the_mechanism":       "/tmp/assets/mechanism.wav",
		},
	}
	advance("render", proj.CompleteRender(assets, "/tmp/output/leap.mp4"))

	if !proj.Status.Terminal() {
		t.Fatalf("rendered should be terminal, got %s", proj.Status)
	}
}

func TestTransitionsRejectStageSkips(t *testing.T) {
	proj := project.New("proj-2", "/tmp/leap.md")

	err := proj.AttachAnalysis(testsupport.Analysis())
	if !errors.Is(err, project.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	var te *project.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if te.From != project.StatusInitialized || te.To != project.StatusAnalyzed {
		t.Fatalf("unexpected transition %s -> %s", te.From, te.To)
	}
	if proj.Status != project.StatusInitialized {
		t.Fatalf("failed transition must not move the project, got %s", proj.Status)
	}

	if err := proj.AttachStoryboard(testsupport.Storyboard()); !errors.Is(err, project.ErrInvalidTransition) {
		t.Fatalf("expected storyboard skip to fail, got %v", err)
	}
	if err := proj.CompleteRender(artifacts.GeneratedAssets{}, "/tmp/out.mp4"); !errors.Is(err, project.ErrInvalidTransition) {
		t.Fatalf("expected render skip to fail, got %v", err)
	}
}

func TestStatusNeverRegresses(t *testing.T) {
	proj := project.New("proj-3", "/tmp/leap.md")
	if err := proj.AttachParsedDocument(testsupport.Document()); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := proj.AttachAnalysis(testsupport.Analysis()); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	err := proj.AttachParsedDocument(testsupport.Document())
	if !errors.Is(err, project.ErrInvalidTransition) {
		t.Fatalf("expected re-parse to fail, got %v", err)
	}
	if proj.Status != project.StatusAnalyzed {
		t.Fatalf("status regressed to %s", proj.Status)
	}
}

func TestAttachScriptEnforcesPlanApproval(t *testing.T) {
	proj := project.New("proj-4", "/tmp/leap.md")
	if err := proj.AttachParsedDocument(testsupport.Document()); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := proj.AttachAnalysis(testsupport.Analysis()); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	governing := testsupport.Plan()
	err := proj.AttachScript(testsupport.Script(), governing)
	if !errors.Is(err, project.ErrPlanNotApproved) {
		t.Fatalf("expected ErrPlanNotApproved for a draft plan, got %v", err)
	}
	if proj.Status != project.StatusAnalyzed {
		t.Fatalf("gated transition must not move the project, got %s", proj.Status)
	}

	if err := governing.Approve(time.Now()); err != nil {
		t.Fatalf("approve plan: %v", err)
	}
	if err := proj.AttachScript(testsupport.Script(), governing); err != nil {
		t.Fatalf("approved plan should unblock scripting: %v", err)
	}
	if proj.Status != project.StatusScripted {
		t.Fatalf("expected scripted, got %s", proj.Status)
	}
}

func TestAttachScriptRejectsInvalidScript(t *testing.T) {
	proj := project.New("proj-5", "/tmp/leap.md")
	if err := proj.AttachParsedDocument(testsupport.Document()); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := proj.AttachAnalysis(testsupport.Analysis()); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	script := testsupport.Script()
	script.TotalDurationSeconds = 5

	err := proj.AttachScript(script, nil)
	if !artifacts.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if proj.Script != nil || proj.Status != project.StatusAnalyzed {
		t.Fatal("rejected script must not be attached")
	}
}

func TestCompleteRenderRejectsForeignAssetKeys(t *testing.T) {
	proj := project.New("proj-6", "/tmp/leap.md")
	if err := proj.AttachParsedDocument(testsupport.Document()); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := proj.AttachAnalysis(testsupport.Analysis()); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if err := proj.AttachScript(testsupport.Script(), nil); err != nil {
		t.Fatalf("script: %v", err)
	}
	if err := proj.AttachStoryboard(testsupport.Storyboard()); err != nil {
		t.Fatalf("storyboard: %v", err)
	}

	assets := artifacts.GeneratedAssets{
		AudioPaths: map[string]string{"credits": "/tmp/assets/credits.wav"},
	}
	err := proj.CompleteRender(assets, "/tmp/output/leap.mp4")
	if !artifacts.IsValidation(err) {
		t.Fatalf("expected validation error for foreign asset key, got %v", err)
	}
	if proj.Status != project.StatusStoryboarded || proj.OutputPath != "" {
		t.Fatal("failed render must leave the project storyboarded")
	}
}

func TestValidateFlagsArtifactStatusMismatch(t *testing.T) {
	proj := project.New("proj-7", "/tmp/leap.md")

	proj.Status = project.StatusAnalyzed
	if err := proj.Validate(); err == nil {
		t.Fatal("analyzed status without artifacts must be invalid")
	}

	proj.Status = project.StatusInitialized
	proj.Script = testsupport.Script()
	if err := proj.Validate(); err == nil {
		t.Fatal("script attached at initialized must be invalid")
	}
}

func TestStatusOrderHelpers(t *testing.T) {
	order := project.AllStatuses()
	if len(order) != 6 {
		t.Fatalf("expected 6 statuses, got %d", len(order))
	}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok || next != order[i+1] {
			t.Fatalf("expected %s to follow %s", order[i+1], order[i])
		}
	}
	if _, ok := project.StatusRendered.Next(); ok {
		t.Fatal("rendered has no successor")
	}
	if !project.StatusScripted.Reached(project.StatusParsed) {
		t.Fatal("scripted should have reached parsed")
	}
	if project.StatusParsed.Reached(project.StatusScripted) {
		t.Fatal("parsed has not reached scripted")
	}

	if status, ok := project.ParseStatus(" Storyboarded "); !ok || status != project.StatusStoryboarded {
		t.Fatalf("ParseStatus failed: %v %v", status, ok)
	}
	if _, ok := project.ParseStatus("transcoded"); ok {
		t.Fatal("unknown status must not parse")
	}
}
