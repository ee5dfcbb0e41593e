package sheet

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

// Snapshot is one immutable normalized view of the remote sheet. Callers
// share it read-only; a refresh replaces the whole snapshot.
type Snapshot struct {
	Records   []report.Record
	FetchedAt time.Time
}

// Cache serves normalized records, refetching from the source once the
// validity window expires. A failed refresh yields an empty result plus the
// error; the previous snapshot is kept for the next attempt after its
// window, and no retry happens within the failing call.
type Cache struct {
	source RowSource
	ttl    time.Duration
	opts   report.Options
	log    *zap.Logger
	now    func() time.Time

	mu   sync.Mutex
	snap *Snapshot
}

const DefaultTTL = 60 * time.Second

func NewCache(source RowSource, ttl time.Duration, opts report.Options, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		opts:   opts,
		log:    log,
		now:    time.Now,
	}
}

// Records returns the current snapshot's records, refreshing first when the
// snapshot is stale or absent.
func (c *Cache) Records(ctx context.Context) ([]report.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil && c.now().Sub(c.snap.FetchedAt) < c.ttl {
		return c.snap.Records, nil
	}

	rows, err := c.source.FetchRows(ctx)
	if err != nil {
		c.log.Warn("sheet fetch failed", zap.Error(err))
		return nil, err
	}

	records := report.Normalize(rows, c.opts)
	c.snap = &Snapshot{Records: records, FetchedAt: c.now()}
	c.log.Info("sheet snapshot refreshed",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(records)))
	return records, nil
}

// Invalidate drops the current snapshot so the next read refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}
