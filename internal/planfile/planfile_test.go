package planfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"docuvid/internal/planfile"
	"docuvid/internal/testsupport"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	draft := testsupport.Plan()
	draft.UserNotes = "tighten the second scene"

	path, err := planfile.Write(dir, "proj-abc", draft)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != filepath.Join(dir, "proj-abc.yaml") {
		t.Fatalf("unexpected review file path %q", path)
	}

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	loaded, err := planfile.Read(path, createdAt)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if loaded.Title != draft.Title {
		t.Fatalf("title changed across round trip: %q", loaded.Title)
	}
	if loaded.UserNotes != "tighten the second scene" {
		t.Fatalf("notes lost: %q", loaded.UserNotes)
	}
	if len(loaded.Scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(loaded.Scenes))
	}
	if loaded.Scenes[0].ASCIIVisual != draft.Scenes[0].ASCIIVisual {
		t.Fatalf("layout sketch lost: %q", loaded.Scenes[0].ASCIIVisual)
	}
	if !loaded.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at %v", loaded.CreatedAt)
	}
}

func TestReadNeverYieldsApprovedPlan(t *testing.T) {
	dir := t.TempDir()
	p := testsupport.Plan()
	if err := p.Approve(time.Now()); err != nil {
		t.Fatalf("approve: %v", err)
	}

	path, err := planfile.Write(dir, "proj-approved", p)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := planfile.Read(path, time.Now())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// Approval lives in the store; a review file can never smuggle it in.
	if loaded.Approved() || loaded.ApprovedAt != nil {
		t.Fatal("plan read from a review file must be a draft")
	}
}

func TestReadSurvivesUserEdits(t *testing.T) {
	dir := t.TempDir()
	path, err := planfile.Write(dir, "proj-edit", testsupport.Plan())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read review file: %v", err)
	}
	edited := strings.Replace(string(data), "The Impossible Leap", "The Sudden Leap", 1)
	edited += "notes: cut scene two in half\n"
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("write edited file: %v", err)
	}

	loaded, err := planfile.Read(path, time.Now())
	if err != nil {
		t.Fatalf("Read edited file: %v", err)
	}
	if loaded.Title != "The Sudden Leap" {
		t.Fatalf("edited title lost: %q", loaded.Title)
	}
	if loaded.UserNotes != "cut scene two in half" {
		t.Fatalf("edited notes lost: %q", loaded.UserNotes)
	}
}

func TestReadRejectsBrokenSceneNumbering(t *testing.T) {
	dir := t.TempDir()
	broken := testsupport.Plan()
	broken.Scenes[0].SceneNumber = 2
	broken.Scenes[1].SceneNumber = 1

	path, err := planfile.Write(dir, "proj-broken", broken)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := planfile.Read(path, time.Now()); err == nil {
		t.Fatal("expected out-of-order scene numbers to be rejected on read")
	}
}
