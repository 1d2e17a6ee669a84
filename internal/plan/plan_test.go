package plan_test

import (
	"errors"
	"testing"
	"time"

	"docuvid/internal/artifacts"
	"docuvid/internal/plan"
	"docuvid/internal/testsupport"
)

func TestApproveStampsApprovalTime(t *testing.T) {
	p := testsupport.Plan()
	if p.Approved() {
		t.Fatal("fixture plan must start as a draft")
	}

	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	if err := p.Approve(at); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !p.Approved() {
		t.Fatal("plan should report approved")
	}
	if p.ApprovedAt == nil || !p.ApprovedAt.Equal(at) {
		t.Fatalf("unexpected approval stamp %v", p.ApprovedAt)
	}
	if p.ApprovedAt.Location() != time.UTC {
		t.Fatalf("approval stamp should be UTC, got %v", p.ApprovedAt.Location())
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("approved plan should validate: %v", err)
	}
}

func TestApproveIsOneWay(t *testing.T) {
	p := testsupport.Plan()
	now := time.Now()
	if err := p.Approve(now); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	first := *p.ApprovedAt

	err := p.Approve(now.Add(time.Hour))
	if !errors.Is(err, plan.ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}
	if !p.ApprovedAt.Equal(first) {
		t.Fatal("failed re-approval must not disturb the original stamp")
	}
}

func TestApproveRejectsEmptyPlan(t *testing.T) {
	p := testsupport.Plan()
	p.Scenes = nil

	err := p.Approve(time.Now())
	if !errors.Is(err, plan.ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
	if p.Approved() {
		t.Fatal("failed approval must leave the plan a draft")
	}
}

func TestApproveRejectsInvalidPlan(t *testing.T) {
	p := testsupport.Plan()
	p.Scenes[1].SceneNumber = p.Scenes[0].SceneNumber

	err := p.Approve(time.Now())
	if err == nil {
		t.Fatal("expected approval of an invalid plan to fail")
	}
	if !artifacts.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if p.Approved() || p.ApprovedAt != nil {
		t.Fatal("failed approval must leave the plan untouched")
	}
}

func TestValidateStatusTimestampPairing(t *testing.T) {
	p := testsupport.Plan()

	stamp := time.Now().UTC()
	p.ApprovedAt = &stamp
	if err := p.Validate(); err == nil {
		t.Fatal("draft with approved_at set must be rejected")
	}

	p.ApprovedAt = nil
	p.Status = plan.StatusApproved
	if err := p.Validate(); err == nil {
		t.Fatal("approved without approved_at must be rejected")
	}
}

func TestValidateSceneNumbersStrictlyIncreasing(t *testing.T) {
	p := testsupport.Plan()
	p.Scenes[0].SceneNumber = 2
	p.Scenes[1].SceneNumber = 2
	if err := p.Validate(); err == nil {
		t.Fatal("expected equal scene numbers to be rejected")
	}

	p.Scenes[0].SceneNumber = 3
	p.Scenes[1].SceneNumber = 1
	if err := p.Validate(); err == nil {
		t.Fatal("expected decreasing scene numbers to be rejected")
	}
}

func TestValidateBoundsComplexity(t *testing.T) {
	p := testsupport.Plan()
	p.ComplexityScore = 0
	if err := p.Validate(); err == nil {
		t.Fatal("complexity 0 must be rejected")
	}
	p.ComplexityScore = 11
	if err := p.Validate(); err == nil {
		t.Fatal("complexity 11 must be rejected")
	}
}

func TestEstimatedSceneDurationSum(t *testing.T) {
	p := testsupport.Plan()
	if sum := p.EstimatedSceneDurationSum(); sum != 90 {
		t.Fatalf("expected 90 seconds planned, got %g", sum)
	}
}
