package models

import (
	"sort"
	"strings"
	"time"
)

const (
	ContentTypeAll         = "all"
	ContentTypeVideo       = "video"
	ContentTypeShort       = "short"
	ContentTypeFullToShort = "full_to_short"
)

const (
	SortFieldDate  = "date"
	SortFieldViews = "views"
	SortFieldTitle = "title"
	SortFieldLikes = "likes"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ContentRecord is a published video or short with its engagement metrics.
// Sourced read-only from the metrics backends; this service never mutates it.
type ContentRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	WriterID    string    `json:"writerId"`
	AccountName string    `json:"accountName,omitempty"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	Comments    int64     `json:"comments"`
	Duration    float64   `json:"duration"`
	PostedDate  time.Time `json:"postedDate"`
	Type        string    `json:"type"`
	Thumbnails  []string  `json:"thumbnailVariants,omitempty"`
}

// EngagementRate is (likes+comments)/views as a percentage, 0 when unviewed.
func (c *ContentRecord) EngagementRate() float64 {
	if c.Views == 0 {
		return 0
	}
	return float64(c.Likes+c.Comments) / float64(c.Views) * 100
}

// FilterContentByType narrows records to one content type. "all" and the
// empty string keep everything.
func FilterContentByType(records []ContentRecord, contentType string) []ContentRecord {
	if contentType == "" || contentType == ContentTypeAll {
		return records
	}
	out := make([]ContentRecord, 0, len(records))
	for _, r := range records {
		if r.Type == contentType {
			out = append(out, r)
		}
	}
	return out
}

// SearchContent keeps records whose title or URL contains the text,
// case-insensitively. Empty text keeps everything.
func SearchContent(records []ContentRecord, text string) []ContentRecord {
	if text == "" {
		return records
	}
	needle := strings.ToLower(text)
	out := make([]ContentRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.URL), needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortContent sorts records by one of date/views/title/likes. The sort is
// stable: equal keys keep the backend's original order. Unknown fields leave
// the slice untouched.
func SortContent(records []ContentRecord, field, order string) {
	desc := order == SortOrderDesc

	var less func(a, b *ContentRecord) bool
	switch field {
	case SortFieldDate:
		less = func(a, b *ContentRecord) bool { return a.PostedDate.Before(b.PostedDate) }
	case SortFieldViews:
		less = func(a, b *ContentRecord) bool { return a.Views < b.Views }
	case SortFieldTitle:
		less = func(a, b *ContentRecord) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortFieldLikes:
		less = func(a, b *ContentRecord) bool { return a.Likes < b.Likes }
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return less(&records[j], &records[i])
		}
		return less(&records[i], &records[j])
	})
}

// LatestContent returns the most recently posted record, nil when empty.
func LatestContent(records []ContentRecord) *ContentRecord {
	var latest *ContentRecord
	for i := range records {
		if latest == nil || records[i].PostedDate.After(latest.PostedDate) {
			latest = &records[i]
		}
	}
	return latest
}
