package repository

import (
	"context"

	"github.com/google/uuid"

	"wsd/internal/models"
)

// SubmissionRepository provides CRUD access to a writer's submission list.
type SubmissionRepository interface {
	// List returns the writer's submissions, most recent first, optionally
	// narrowed by the filter.
	List(ctx context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error)
	// Create appends a new submission; it becomes the head of subsequent lists.
	Create(ctx context.Context, s *models.Submission) error
}
