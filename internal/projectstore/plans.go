package projectstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docuvid/internal/plan"
)

// ErrNoPlan indicates the project has no stored plan.
var ErrNoPlan = errors.New("no plan for project")

// SavePlan stores a draft plan for a project, replacing any existing draft.
// Re-planning over an approved plan is refused; approval is one-way.
func (s *Store) SavePlan(ctx context.Context, projectID string, p *plan.VideoPlan) error {
	if p == nil {
		return fmt.Errorf("plan is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	// The approved guard lives in the conflict clause so a draft save racing
	// an approval commit cannot regress the stored status.
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO plans (project_id, status, plan_json, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (project_id) DO UPDATE SET
             status = excluded.status, plan_json = excluded.plan_json, updated_at = excluded.updated_at
         WHERE plans.status != ?`,
		projectID,
		string(p.Status),
		string(data),
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
		timestamp,
		string(plan.StatusApproved),
	)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("save plan: %w", plan.ErrAlreadyApproved)
	}
	return nil
}

// GetPlan fetches the plan linked to a project.
func (s *Store) GetPlan(ctx context.Context, projectID string) (*plan.VideoPlan, error) {
	var data string
	err := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT plan_json FROM plans WHERE project_id = ?`,
		projectID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoPlan, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	var p plan.VideoPlan
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// ApprovePlan transitions a project's stored plan from draft to approved,
// stamping the approval time. The write is guarded by the draft status so
// concurrent approvals resolve to one winner; the loser sees the plan's
// one-way semantics as plan.ErrAlreadyApproved.
func (s *Store) ApprovePlan(ctx context.Context, projectID string, at time.Time) (*plan.VideoPlan, error) {
	p, err := s.GetPlan(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := p.Approve(at); err != nil {
		return nil, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	res, err := s.execWithRetry(
		ctx,
		`UPDATE plans SET status = ?, plan_json = ?, updated_at = ?
         WHERE project_id = ? AND status = ?`,
		string(plan.StatusApproved),
		string(data),
		time.Now().UTC().Format(time.RFC3339Nano),
		projectID,
		string(plan.StatusDraft),
	)
	if err != nil {
		return nil, fmt.Errorf("approve plan: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, plan.ErrAlreadyApproved
	}
	return p, nil
}
