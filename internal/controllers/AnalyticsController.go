package controllers

import (
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/services"
)

type AnalyticsController struct {
	logger    providers.Logger
	analytics services.AnalyticsServiceInterface
	content   services.ContentServiceInterface
	cache     providers.CacheProviderInterface
}

func NewAnalyticsController(logger providers.Logger, analytics services.AnalyticsServiceInterface, content services.ContentServiceInterface, cache providers.CacheProviderInterface) *AnalyticsController {
	return &AnalyticsController{
		logger:    logger,
		analytics: analytics,
		content:   content,
		cache:     cache,
	}
}

func (ac *AnalyticsController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// scopedWriterID prefers the writer_id query parameter, falling back to the
// authenticated user.
func scopedWriterID(r *http.Request) string {
	if id := r.URL.Query().Get("writer_id"); id != "" {
		return id
	}
	if user, ok := providers.UserFromContext(r.Context()); ok {
		return user.ID.String()
	}
	return ""
}

// Overview returns the composite dashboard payload: canonical series,
// derived scalars, top content, and latest content in one round trip.
func (ac *AnalyticsController) Overview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writer := scopedWriterID(r)
	rangeSel := q.Get("range")

	var customStart, customEnd time.Time
	if raw := q.Get("startDate"); raw != "" {
		customStart, _ = time.Parse("2006-01-02", raw)
	}
	if raw := q.Get("endDate"); raw != "" {
		customEnd, _ = time.Parse("2006-01-02", raw)
	}

	key := "overview:" + writer + ":" + rangeSel + ":" + q.Get("startDate") + ":" + q.Get("endDate")
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.analytics.Overview(r.Context(), writer, rangeSel, customStart, customEnd)
	})
}

// TopContent returns the ranked list, default limit 10.
func (ac *AnalyticsController) TopContent(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writer := scopedWriterID(r)
	rangeSel := q.Get("range")
	contentType := q.Get("type")
	limit, _ := strconv.Atoi(q.Get("limit"))

	key := "top:" + writer + ":" + rangeSel + ":" + contentType + ":" + q.Get("limit")
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		rng, err := resolveRangeParam(rangeSel)
		if err != nil {
			return nil, err
		}
		res := ac.content.TopContent(r.Context(), writer, rng, limit, contentType)
		return map[string]any{"data": res.Items, "source": res.Origin}, nil
	})
}

// LatestContent returns the single most recent record, null when there is
// nothing.
func (ac *AnalyticsController) LatestContent(w http.ResponseWriter, r *http.Request) {
	writer := scopedWriterID(r)

	key := "latest:" + writer
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		record, origin := ac.content.LatestContent(r.Context(), writer)
		return map[string]any{"data": record, "source": origin}, nil
	})
}

// ListVideos returns one page of the writer's content with pagination state.
func (ac *AnalyticsController) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writer := scopedWriterID(r)
	rangeSel := q.Get("range")
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("limit"))

	key := "videos:" + writer + ":" + r.URL.RawQuery
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		rng, err := resolveRangeParam(rangeSel)
		if err != nil {
			return nil, err
		}
		return ac.content.ListContent(r.Context(), writer, rng, page, pageSize,
			q.Get("type"), q.Get("sortBy"), q.Get("sortOrder"), q.Get("search")), nil
	})
}

func resolveRangeParam(selector string) (models.DateRange, error) {
	return models.ResolveRange(selector, time.Now(), time.Time{}, time.Time{})
}

// VideoDetail returns one record with chart and retention data.
func (ac *AnalyticsController) VideoDetail(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["id"]
	writer := scopedWriterID(r)
	rangeSel := r.URL.Query().Get("range")

	key := "video:" + videoID + ":" + writer + ":" + rangeSel
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.analytics.VideoDetail(r.Context(), writer, videoID, rangeSel)
	})
}
