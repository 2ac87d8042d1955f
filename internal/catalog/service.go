// Package catalog owns the in-memory component registry: a TTL-bounded
// snapshot of extracted records, refreshed from the remote repository
// on demand, plus the query operations served over it.
//
// The snapshot is the only shared state. It is swapped atomically and
// only after a fully successful recrawl; a failed refresh leaves the
// previous snapshot authoritative. Concurrent refreshes are coalesced
// into a single in-flight crawl so remote call volume stays bounded.
package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

// DefaultTTL is the snapshot time-to-live.
const DefaultTTL = 5 * time.Minute

// Crawler produces the full record set from the remote repository.
type Crawler interface {
	Crawl(ctx context.Context) ([]extract.Record, error)
}

// Snapshot is the complete, internally consistent cache state at one
// point in time. A zero Timestamp means the registry has never been
// refreshed.
type Snapshot struct {
	// Records in crawl order. The order is the search tie-break.
	Records []extract.Record

	// Timestamp is the instant of the last successful refresh.
	Timestamp time.Time
}

// Empty reports whether the snapshot holds no records.
func (s Snapshot) Empty() bool {
	return len(s.Records) == 0
}

// Config configures the catalog service.
type Config struct {
	// TTL is the snapshot time-to-live. Defaults to DefaultTTL.
	TTL time.Duration

	// Logger for structured logging.
	Logger *zap.Logger
}

// Service is the stateful core of the registry.
type Service struct {
	crawler Crawler
	ttl     time.Duration
	logger  *zap.Logger
	metrics *Metrics

	mu   sync.RWMutex
	snap Snapshot

	group singleflight.Group

	// now is a test seam.
	now func() time.Time
}

// NewService creates the catalog service over a crawler.
func NewService(c Crawler, cfg Config) *Service {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		crawler: c,
		ttl:     ttl,
		logger:  logger,
		metrics: NewMetrics(logger),
		now:     time.Now,
	}
}

// Snapshot returns the current snapshot, refreshing it first when
// forceRefresh is set, the snapshot is empty, or the TTL has expired.
//
// On a failed refresh the previous snapshot is returned alongside the
// error: read paths can keep serving stale data while the refresh
// failure is surfaced to whoever asked for fresh data.
func (s *Service) Snapshot(ctx context.Context, forceRefresh bool) (Snapshot, error) {
	if !forceRefresh {
		s.mu.RLock()
		snap := s.snap
		s.mu.RUnlock()

		if !snap.Empty() && s.now().Sub(snap.Timestamp) < s.ttl {
			return snap, nil
		}
	}

	v, err, shared := s.group.Do("refresh", func() (interface{}, error) {
		return s.refresh(ctx)
	})
	if shared {
		s.logger.Debug("refresh coalesced with in-flight crawl")
	}
	if err != nil {
		s.mu.RLock()
		prev := s.snap
		s.mu.RUnlock()
		return prev, err
	}
	return v.(Snapshot), nil
}

// refresh recrawls the repository and swaps the snapshot on success.
// The swap is all-or-nothing: a failed crawl leaves the previous
// snapshot untouched.
func (s *Service) refresh(ctx context.Context) (Snapshot, error) {
	start := s.now()
	s.logger.Info("refreshing component registry")

	records, err := s.crawler.Crawl(ctx)
	if err != nil {
		s.metrics.RecordRefresh(ctx, 0, s.now().Sub(start), err)
		s.logger.Error("registry refresh failed", zap.Error(err))
		return Snapshot{}, &RefreshError{Err: err}
	}

	snap := Snapshot{Records: records, Timestamp: s.now()}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	elapsed := s.now().Sub(start)
	s.metrics.RecordRefresh(ctx, len(records), elapsed, nil)
	s.logger.Info("component registry refreshed",
		zap.Int("components", len(records)),
		zap.Duration("duration", elapsed))

	return snap, nil
}
