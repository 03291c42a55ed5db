package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docguard/logger"
	"docguard/models"
)

// CreateRun persists a validation run and its missing-comment list in one
// transaction. A fresh UUID is assigned and the stored run returned.
func CreateRun(originalPath, documentedPath string, report models.ValidationReport) (models.ValidationRun, error) {
	run := models.ValidationRun{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now().UTC(),
		OriginalPath:   originalPath,
		DocumentedPath: documentedPath,
		Report:         report,
	}

	tx, err := DB.Begin()
	if err != nil {
		return models.ValidationRun{}, fmt.Errorf("beginning run insert transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, original_path, documented_path, language, verdict,
		 original_comments, documented_comments, preserved, added, missing, waived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.OriginalPath, run.DocumentedPath,
		report.Language, report.Verdict,
		report.OriginalComments, report.DocumentedComments,
		report.Preserved, report.Added, report.MissingCount, report.Waived)
	if err != nil {
		return models.ValidationRun{}, fmt.Errorf("inserting run: %w", err)
	}

	for _, m := range report.Missing {
		if _, err := tx.Exec(`INSERT INTO run_missing_comments (run_id, line_number, comment_text) VALUES (?, ?, ?)`,
			run.ID, m.Line, m.Text); err != nil {
			return models.ValidationRun{}, fmt.Errorf("inserting missing comment for run %s: %w", run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ValidationRun{}, fmt.Errorf("committing run %s: %w", run.ID, err)
	}
	logger.Info("Recorded validation run %s (%s)", run.ID, report.Verdict)
	return run, nil
}

// GetRunsPaginated returns a page of runs, newest first, without their
// missing-comment lists.
func GetRunsPaginated(limit, offset int) ([]models.ValidationRun, int64, error) {
	var totalRecords int64
	if err := DB.QueryRow("SELECT COUNT(*) FROM runs").Scan(&totalRecords); err != nil {
		return nil, 0, fmt.Errorf("counting runs: %w", err)
	}

	var runs []models.ValidationRun
	if totalRecords == 0 {
		return runs, 0, nil
	}

	rows, err := DB.Query(`SELECT id, created_at, original_path, documented_path, language, verdict,
			original_comments, documented_comments, preserved, added, missing, waived
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, totalRecords, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, totalRecords, fmt.Errorf("scanning run row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, totalRecords, rows.Err()
}

// GetRunByID fetches one run including its missing-comment list.
func GetRunByID(runID string) (models.ValidationRun, error) {
	row := DB.QueryRow(`SELECT id, created_at, original_path, documented_path, language, verdict,
			original_comments, documented_comments, preserved, added, missing, waived
		FROM runs WHERE id = ?`, runID)

	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.ValidationRun{}, fmt.Errorf("run %s not found", runID)
		}
		return models.ValidationRun{}, fmt.Errorf("querying run %s: %w", runID, err)
	}

	rows, err := DB.Query(`SELECT line_number, comment_text FROM run_missing_comments WHERE run_id = ? ORDER BY line_number ASC, id ASC`, runID)
	if err != nil {
		return models.ValidationRun{}, fmt.Errorf("querying missing comments for run %s: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MissingComment
		if err := rows.Scan(&m.Line, &m.Text); err != nil {
			return models.ValidationRun{}, fmt.Errorf("scanning missing comment row for run %s: %w", runID, err)
		}
		run.Report.Missing = append(run.Report.Missing, m)
	}
	return run, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (models.ValidationRun, error) {
	var run models.ValidationRun
	err := row.Scan(&run.ID, &run.CreatedAt, &run.OriginalPath, &run.DocumentedPath,
		&run.Report.Language, &run.Report.Verdict,
		&run.Report.OriginalComments, &run.Report.DocumentedComments,
		&run.Report.Preserved, &run.Report.Added, &run.Report.MissingCount, &run.Report.Waived)
	if err != nil {
		return models.ValidationRun{}, err
	}
	return run, nil
}
