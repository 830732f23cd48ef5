package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// SavedScheduleRepository persists a student's saved schedules, versioned
// per student+term, adapted from the teacher's
// CreateVersioned/UpdateStatus semester-schedule repository.
type SavedScheduleRepository struct {
	db *sqlx.DB
}

// NewSavedScheduleRepository wires a repository against an existing pool.
func NewSavedScheduleRepository(db *sqlx.DB) *SavedScheduleRepository {
	return &SavedScheduleRepository{db: db}
}

func (r *SavedScheduleRepository) exec(tx *sqlx.Tx) sqlx.ExtContext {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateVersioned inserts a new saved schedule, assigning it the next
// version for its (student, term) pair inside tx when tx is non-nil.
func (r *SavedScheduleRepository) CreateVersioned(ctx context.Context, tx *sqlx.Tx, saved *SavedSchedule, sections []SavedSection) error {
	if saved.StudentID == "" || saved.Term == "" {
		return fmt.Errorf("catalog: saved schedule requires a student id and term")
	}
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	if saved.Status == "" {
		saved.Status = SavedScheduleStatusDraft
	}

	encodedSections, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("encode saved schedule sections: %w", err)
	}
	saved.Sections = types.JSONText(encodedSections)
	if len(saved.Meta) == 0 {
		saved.Meta = types.JSONText(`{}`)
	}

	now := time.Now().UTC()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	target := r.exec(tx)

	const nextVersionQuery = `SELECT COALESCE(MAX(version), 0) + 1 FROM saved_schedules WHERE student_id = $1 AND term = $2`
	if err := sqlx.GetContext(ctx, target, &saved.Version, nextVersionQuery, saved.StudentID, saved.Term); err != nil {
		return fmt.Errorf("compute next saved schedule version: %w", err)
	}

	const insertQuery = `
INSERT INTO saved_schedules (id, student_id, term, version, status, sections, score, meta, created_at, updated_at)
VALUES (:id, :student_id, :term, :version, :status, :sections, :score, :meta, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, target, insertQuery, saved); err != nil {
		return fmt.Errorf("insert saved schedule: %w", err)
	}
	return nil
}

// ListByStudentTerm returns every saved schedule for a student in a term,
// newest version first.
func (r *SavedScheduleRepository) ListByStudentTerm(ctx context.Context, studentID, term string) ([]SavedSchedule, error) {
	const query = `SELECT id, student_id, term, version, status, sections, score, meta, created_at, updated_at
FROM saved_schedules WHERE student_id = $1 AND term = $2 ORDER BY version DESC`
	var saved []SavedSchedule
	if err := r.db.SelectContext(ctx, &saved, query, studentID, term); err != nil {
		return nil, fmt.Errorf("list saved schedules: %w", err)
	}
	return saved, nil
}

// FindByID loads one saved schedule by id.
func (r *SavedScheduleRepository) FindByID(ctx context.Context, id string) (*SavedSchedule, error) {
	const query = `SELECT id, student_id, term, version, status, sections, score, meta, created_at, updated_at
FROM saved_schedules WHERE id = $1`
	var saved SavedSchedule
	if err := r.db.GetContext(ctx, &saved, query, id); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateStatus transitions a saved schedule's status, e.g. DRAFT -> SAVED.
func (r *SavedScheduleRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id string, status SavedScheduleStatus) error {
	target := r.exec(tx)
	result, err := target.ExecContext(ctx, `UPDATE saved_schedules SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update saved schedule status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("saved schedule status rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a draft saved schedule by id. A schedule in any other
// status is left in place and reported as sql.ErrNoRows.
func (r *SavedScheduleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_schedules WHERE id = $1 AND status = $2`, id, SavedScheduleStatusDraft)
	if err != nil {
		return fmt.Errorf("delete saved schedule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("saved schedule delete rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
