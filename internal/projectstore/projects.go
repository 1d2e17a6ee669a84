package projectstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docuvid/internal/artifacts"
	"docuvid/internal/project"
	"docuvid/internal/services"
)

var (
	// ErrNotFound indicates no project exists for the given ID.
	ErrNotFound = errors.New("project not found")
	// ErrStaleProject indicates a compare-and-swap transition lost to a
	// concurrent writer; reload and retry against the current state.
	ErrStaleProject = errors.New("project modified concurrently")
)

// NewProject inserts a project at the start of the pipeline and returns the
// stored record.
func (s *Store) NewProject(ctx context.Context, sourcePath string, sourceType artifacts.SourceType) (*Record, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return nil, fmt.Errorf("source path must not be empty")
	}
	if !sourceType.Valid() {
		return nil, fmt.Errorf("source type %q is not one of markdown/pdf/url/text", sourceType)
	}

	proj := project.New(uuid.NewString(), sourcePath)
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO projects (
            project_id, source_path, source_type, status, assets_json, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		proj.ProjectID,
		proj.SourcePath,
		string(sourceType),
		string(proj.Status),
		"{}",
		timestamp,
		timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return s.GetByID(ctx, proj.ProjectID)
}

// GetByID fetches one project record.
func (s *Store) GetByID(ctx context.Context, projectID string) (*Record, error) {
	row := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT `+projectColumns+` FROM projects WHERE project_id = ?`,
		projectID,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return rec, nil
}

// List returns all project records ordered by creation time.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListClaimable returns projects the driver may advance: non-terminal status
// and no failure disposition, oldest first.
func (s *Store) ListClaimable(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT `+projectColumns+` FROM projects
         WHERE disposition = '' AND status != ?
         ORDER BY created_at`,
		string(project.StatusRendered),
	)
	if err != nil {
		return nil, fmt.Errorf("list claimable projects: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CommitTransition persists a project whose status just advanced by one
// stage. The write is guarded by the status the project held before the
// transition, so a concurrent competing commit leaves exactly one winner;
// losers get ErrStaleProject.
func (s *Store) CommitTransition(ctx context.Context, proj *project.VideoProject, previous project.Status) error {
	if proj == nil {
		return fmt.Errorf("project is nil")
	}
	if next, ok := previous.Next(); !ok || next != proj.Status {
		return fmt.Errorf("%w: status %s does not follow %s", project.ErrInvalidTransition, proj.Status, previous)
	}
	if err := proj.Validate(); err != nil {
		return err
	}

	parsedJSON, err := marshalNullable(proj.Parsed)
	if err != nil {
		return err
	}
	analysisJSON, err := marshalNullable(proj.Analysis)
	if err != nil {
		return err
	}
	scriptJSON, err := marshalNullable(proj.Script)
	if err != nil {
		return err
	}
	storyboardJSON, err := marshalNullable(proj.Storyboard)
	if err != nil {
		return err
	}
	assetsJSON, err := json.Marshal(&proj.Assets)
	if err != nil {
		return fmt.Errorf("marshal assets: %w", err)
	}

	res, err := s.execWithRetry(
		ctx,
		`UPDATE projects
         SET status = ?, parsed_json = ?, analysis_json = ?, script_json = ?,
             storyboard_json = ?, assets_json = ?, output_path = ?, updated_at = ?
         WHERE project_id = ? AND status = ? AND disposition = ''`,
		string(proj.Status),
		parsedJSON,
		analysisJSON,
		scriptJSON,
		storyboardJSON,
		string(assetsJSON),
		proj.OutputPath,
		time.Now().UTC().Format(time.RFC3339Nano),
		proj.ProjectID,
		string(previous),
	)
	if err != nil {
		return fmt.Errorf("commit transition: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("commit transition rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: project %s no longer at %s", ErrStaleProject, proj.ProjectID, previous)
	}
	return nil
}

// SetDisposition records a stage failure against the project without
// touching its status; the project resumes from its last good stage once the
// disposition is cleared.
func (s *Store) SetDisposition(ctx context.Context, projectID string, disposition services.Disposition, message string) error {
	res, err := s.execWithRetry(
		ctx,
		`UPDATE projects SET disposition = ?, error_message = ?, updated_at = ? WHERE project_id = ?`,
		string(disposition),
		message,
		time.Now().UTC().Format(time.RFC3339Nano),
		projectID,
	)
	if err != nil {
		return fmt.Errorf("set disposition: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, projectID)
	}
	return nil
}

// ClearDisposition removes a failure marker so the driver may pick the
// project up again at its current status.
func (s *Store) ClearDisposition(ctx context.Context, projectID string) error {
	res, err := s.execWithRetry(
		ctx,
		`UPDATE projects SET disposition = '', error_message = '', updated_at = ? WHERE project_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		projectID,
	)
	if err != nil {
		return fmt.Errorf("clear disposition: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, projectID)
	}
	return nil
}

// Delete abandons a project and its plan.
func (s *Store) Delete(ctx context.Context, projectID string) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM projects WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, projectID)
	}
	return nil
}

// Counts aggregates project totals per status for CLI summaries.
func (s *Store) Counts(ctx context.Context) (map[project.Status]int, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT status, COUNT(1) FROM projects GROUP BY status`,
	)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	defer rows.Close()

	counts := make(map[project.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[project.Status(status)] = count
	}
	return counts, rows.Err()
}

func marshalNullable[T any](v *T) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	return marshalArtifact(v)
}
