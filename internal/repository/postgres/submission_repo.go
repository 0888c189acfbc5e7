package postgres

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"wsd/internal/models"
	"wsd/internal/repository"
)

// SubmissionRepo implements SubmissionRepository using PostgreSQL.
type SubmissionRepo struct{ db *DB }

// NewSubmissionRepo constructs a submission repository.
func NewSubmissionRepo(db *DB) repository.SubmissionRepository { return &SubmissionRepo{db: db} }

// List returns the writer's submissions, newest first. Date and title
// filters narrow the selection; ordering stays creation-time descending.
func (r *SubmissionRepo) List(ctx context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error) {
	q := `
SELECT id, writer_id, title, type, number, structure, doc_link, status, created_at
FROM submissions WHERE writer_id=$1`
	args := []any{writerID}

	if filter.Start != nil {
		args = append(args, *filter.Start)
		q += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		q += ` AND created_at <= $` + strconv.Itoa(len(args))
	}
	if filter.TitleSearch != "" {
		args = append(args, "%"+filter.TitleSearch+"%")
		q += ` AND title ILIKE $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Submission, 0)
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.WriterID, &s.Title, &s.Type, &s.Number, &s.Structure, &s.DocLink, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new submission row.
func (r *SubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	const q = `
INSERT INTO submissions (id, writer_id, title, type, number, structure, doc_link, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Pool.Exec(ctx, q, s.ID, s.WriterID, s.Title, s.Type, s.Number, s.Structure, s.DocLink, s.Status, s.CreatedAt)
	return err
}
