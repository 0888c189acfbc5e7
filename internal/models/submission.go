package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubmissionTypeOriginal = "Original"
	SubmissionTypeTrope    = "Trope"
	SubmissionTypeSTL      = "STL"
	SubmissionTypeRewrite  = "Re-write"
)

const (
	StatusPending     = "pending"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
	StatusPosted      = "posted"
	StatusDraft       = "draft"
	StatusUnderReview = "under_review"
)

// Submission is a script proposed by a writer. Title and DocLink are
// immutable once created; only the status changes, and that transition is
// performed by an external review process.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	WriterID  uuid.UUID `json:"writerId"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Number    *int      `json:"number,omitempty"`
	Structure string    `json:"structure,omitempty"`
	DocLink   string    `json:"googleDocLink"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmissionFilter narrows a writer's submission list.
type SubmissionFilter struct {
	Start       *time.Time
	End         *time.Time
	TitleSearch string
}
