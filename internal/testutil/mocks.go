package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/sources"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       int
	CacheHits      int
	CacheMisses    int
	Fallbacks      map[string]int
	MockServed     int
	UpstreamCalls  int
	RequestStatus  int
	RequestURLPath string
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Fallbacks: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
	m.RequestURLPath = endpoint
	m.RequestStatus = status
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncBackendFallback(backend string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fallbacks[backend]++
}

func (m *MockMetrics) IncMockServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MockServed++
}

func (m *MockMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamCalls++
}

// StubSeriesSource implements sources.SeriesSource with an injectable fetch.
type StubSeriesSource struct {
	SourceName string
	FetchFn    func(ctx context.Context, scope sources.Scope, rng models.DateRange) (*sources.Series, error)
	Calls      int
}

func (s *StubSeriesSource) Name() string { return s.SourceName }

func (s *StubSeriesSource) FetchSeries(ctx context.Context, scope sources.Scope, rng models.DateRange) (*sources.Series, error) {
	s.Calls++
	return s.FetchFn(ctx, scope, rng)
}

// StubContentSource implements sources.ContentSource with an injectable fetch.
type StubContentSource struct {
	SourceName string
	FetchFn    func(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error)
	Calls      int
}

func (s *StubContentSource) Name() string { return s.SourceName }

func (s *StubContentSource) FetchContent(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error) {
	s.Calls++
	return s.FetchFn(ctx, writerID, rng)
}

// MockUserRepo implements repository.UserRepository over an in-memory map.
type MockUserRepo struct {
	mu    sync.Mutex
	Users map[uuid.UUID]*models.User
	Err   error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{Users: make(map[uuid.UUID]*models.User)}
}

func (m *MockUserRepo) Add(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users[u.ID] = u
}

func (m *MockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if u, ok := m.Users[id]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (m *MockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *MockUserRepo) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Users[u.ID] = u
	return nil
}

// MockSubmissionRepo implements repository.SubmissionRepository in memory,
// newest first.
type MockSubmissionRepo struct {
	mu          sync.Mutex
	Submissions []models.Submission
	Err         error
}

func (m *MockSubmissionRepo) List(_ context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Submission
	for i := len(m.Submissions) - 1; i >= 0; i-- {
		s := m.Submissions[i]
		if s.WriterID != writerID {
			continue
		}
		if filter.Start != nil && s.CreatedAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && s.CreatedAt.After(*filter.End) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *MockSubmissionRepo) Create(_ context.Context, s *models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Submissions = append(m.Submissions, *s)
	return nil
}
