package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"

	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/repository"
)

// SubmissionInput is the creation payload. Number is only meaningful (and
// required) for Trope submissions.
type SubmissionInput struct {
	Title     string `json:"title" validate:"required"`
	Type      string `json:"type" validate:"required|in:Original,Trope,STL,Re-write"`
	Number    *int   `json:"number"`
	Structure string `json:"structure"`
	DocLink   string `json:"googleDocLink" validate:"required"`
}

type SubmissionServiceInterface interface {
	List(ctx context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error)
	Create(ctx context.Context, writerID uuid.UUID, input SubmissionInput) (*models.Submission, error)
}

type SubmissionService struct {
	repo   repository.SubmissionRepository
	logger providers.Logger
}

func NewSubmissionService(logger providers.Logger, repo repository.SubmissionRepository) SubmissionServiceInterface {
	return &SubmissionService{repo: repo, logger: logger}
}

// List returns the writer's submissions, most recent first.
func (s *SubmissionService) List(ctx context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error) {
	return s.repo.List(ctx, writerID, filter)
}

// Create validates the payload and appends a pending submission to the head
// of the writer's list.
func (s *SubmissionService) Create(ctx context.Context, writerID uuid.UUID, input SubmissionInput) (*models.Submission, error) {
	v := validate.Struct(&input)
	if !v.Validate() {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidation, v.Errors.One())
	}
	if input.Type == models.SubmissionTypeTrope && input.Number == nil {
		return nil, fmt.Errorf("%w: number is required for Trope submissions", errs.ErrValidation)
	}

	sub := &models.Submission{
		ID:        uuid.New(),
		WriterID:  writerID,
		Title:     input.Title,
		Type:      input.Type,
		Number:    input.Number,
		Structure: input.Structure,
		DocLink:   input.DocLink,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Infof(providers.TypePost, "Submission %s created for writer %s", sub.ID, writerID)
	return sub, nil
}
