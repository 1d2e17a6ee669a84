package projectstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"docuvid/internal/artifacts"
	"docuvid/internal/project"
	"docuvid/internal/services"
)

// Record is one persisted pipeline run: the VideoProject aggregate plus the
// bookkeeping the driver needs (source type for parser dispatch, failure
// disposition, timestamps).
type Record struct {
	Project      *project.VideoProject
	SourceType   artifacts.SourceType
	Disposition  services.Disposition
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claimable reports whether the driver may advance this record: not failed,
// not under review, not terminal.
func (r *Record) Claimable() bool {
	return r.Disposition == "" && !r.Project.Status.Terminal()
}

const projectColumns = `project_id, source_path, source_type, status, disposition, error_message,
    parsed_json, analysis_json, script_json, storyboard_json, assets_json, output_path,
    created_at, updated_at`

func marshalArtifact(v any) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal artifact: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func scanRecord(row interface{ Scan(...any) error }) (*Record, error) {
	var (
		rec            Record
		proj           project.VideoProject
		sourceType     string
		status         string
		disposition    string
		parsedJSON     sql.NullString
		analysisJSON   sql.NullString
		scriptJSON     sql.NullString
		storyboardJSON sql.NullString
		assetsJSON     string
		createdAt      string
		updatedAt      string
	)
	if err := row.Scan(
		&proj.ProjectID, &proj.SourcePath, &sourceType, &status, &disposition, &rec.ErrorMessage,
		&parsedJSON, &analysisJSON, &scriptJSON, &storyboardJSON, &assetsJSON, &proj.OutputPath,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	proj.Status = project.Status(status)
	rec.SourceType = artifacts.SourceType(sourceType)
	rec.Disposition = services.Disposition(disposition)

	if parsedJSON.Valid {
		proj.Parsed = new(artifacts.ParsedDocument)
		if err := json.Unmarshal([]byte(parsedJSON.String), proj.Parsed); err != nil {
			return nil, fmt.Errorf("decode parsed document: %w", err)
		}
	}
	if analysisJSON.Valid {
		proj.Analysis = new(artifacts.ContentAnalysis)
		if err := json.Unmarshal([]byte(analysisJSON.String), proj.Analysis); err != nil {
			return nil, fmt.Errorf("decode content analysis: %w", err)
		}
	}
	if scriptJSON.Valid {
		proj.Script = new(artifacts.Script)
		if err := json.Unmarshal([]byte(scriptJSON.String), proj.Script); err != nil {
			return nil, fmt.Errorf("decode script: %w", err)
		}
	}
	if storyboardJSON.Valid {
		proj.Storyboard = new(artifacts.Storyboard)
		if err := json.Unmarshal([]byte(storyboardJSON.String), proj.Storyboard); err != nil {
			return nil, fmt.Errorf("decode storyboard: %w", err)
		}
	}
	if assetsJSON != "" {
		if err := json.Unmarshal([]byte(assetsJSON), &proj.Assets); err != nil {
			return nil, fmt.Errorf("decode assets: %w", err)
		}
	}

	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	rec.Project = &proj
	return &rec, nil
}
