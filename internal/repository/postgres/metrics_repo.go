package postgres

import (
	"context"
	"strconv"
	"time"

	"wsd/internal/models"
	"wsd/internal/repository"
)

// MetricsRepo is the relational metrics fallback. It serves daily view
// rollups and content records out of Postgres when the remote backends are
// unreachable.
type MetricsRepo struct{ db *DB }

// NewMetricsRepo constructs a metrics repository.
func NewMetricsRepo(db *DB) repository.MetricsRepository { return &MetricsRepo{db: db} }

// DailyViews selects per-day view points for the scope within the range.
func (r *MetricsRepo) DailyViews(ctx context.Context, writerID, videoID string, rng models.DateRange) ([]models.DailyViewPoint, error) {
	q := `
SELECT day, SUM(views)
FROM daily_views WHERE writer_id=$1`
	args := []any{writerID}

	if videoID != "" {
		args = append(args, videoID)
		q += ` AND video_id=$2`
	}
	q += rangeClause(&args, rng)
	q += ` GROUP BY day ORDER BY day ASC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DailyViewPoint, 0)
	for rows.Next() {
		var day time.Time
		var views int64
		if err := rows.Scan(&day, &views); err != nil {
			return nil, err
		}
		out = append(out, models.DailyViewPoint{Date: day.Format("2006-01-02"), Views: views})
	}
	return out, rows.Err()
}

// Totals sums views, likes and comments over the writer's content in range.
func (r *MetricsRepo) Totals(ctx context.Context, writerID, videoID string, rng models.DateRange) (int64, int64, int64, error) {
	q := `
SELECT COALESCE(SUM(views),0), COALESCE(SUM(likes),0), COALESCE(SUM(comments),0)
FROM content WHERE writer_id=$1`
	args := []any{writerID}

	if videoID != "" {
		args = append(args, videoID)
		q += ` AND id=$2`
	}
	q += contentRangeClause(&args, rng)

	var views, likes, comments int64
	if err := r.db.Pool.QueryRow(ctx, q, args...).Scan(&views, &likes, &comments); err != nil {
		return 0, 0, 0, err
	}
	return views, likes, comments, nil
}

// Content selects the writer's content records posted within the range.
func (r *MetricsRepo) Content(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error) {
	q := `
SELECT id, title, url, writer_id, account_name, views, likes, comments, duration, posted_date, type
FROM content WHERE writer_id=$1`
	args := []any{writerID}
	q += contentRangeClause(&args, rng)
	q += ` ORDER BY posted_date DESC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ContentRecord, 0)
	for rows.Next() {
		var c models.ContentRecord
		if err := rows.Scan(&c.ID, &c.Title, &c.URL, &c.WriterID, &c.AccountName, &c.Views, &c.Likes, &c.Comments, &c.Duration, &c.PostedDate, &c.Type); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func rangeClause(args *[]any, rng models.DateRange) string {
	clause := ""
	if !rng.Unbounded {
		*args = append(*args, rng.Start)
		clause += ` AND day >= $` + strconv.Itoa(len(*args))
	}
	*args = append(*args, rng.End)
	clause += ` AND day <= $` + strconv.Itoa(len(*args))
	return clause
}

func contentRangeClause(args *[]any, rng models.DateRange) string {
	clause := ""
	if !rng.Unbounded {
		*args = append(*args, rng.Start)
		clause += ` AND posted_date >= $` + strconv.Itoa(len(*args))
	}
	*args = append(*args, rng.End)
	clause += ` AND posted_date <= $` + strconv.Itoa(len(*args))
	return clause
}
