package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/steelworks/partsearch/internal/models"
)

// LoadMeta describes the most recent load attempt.
type LoadMeta struct {
	Source      string     `json:"source"`
	LoadedAt    time.Time  `json:"loaded_at"`
	RecordCount int        `json:"record_count"`
	Stats       CleanStats `json:"stats"`
	LastError   string     `json:"last_error,omitempty"`
}

// Provider owns the catalog snapshot: it loads from a Source, cleans the
// records, and hands out immutable snapshots. Refreshes happen on a TTL when
// records are requested, on demand via Reload, or on file-change events.
// A failed refresh keeps the previous snapshot.
type Provider struct {
	source Source
	ttl    time.Duration
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot []models.Part
	meta     LoadMeta

	loading sync.Mutex
}

// NewProvider creates a provider over source. ttl of zero disables TTL
// refresh (Reload and file watching still work).
func NewProvider(source Source, ttl time.Duration, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// Records returns the current snapshot, refreshing first when it is stale.
// The returned slice must be treated as read-only; it is shared between
// concurrent searches and replaced wholesale on refresh.
func (p *Provider) Records() []models.Part {
	if p.stale() {
		if err := p.refresh(context.Background()); err != nil {
			p.logger.Warn("catalog refresh failed, serving previous snapshot", zap.Error(err))
		}
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Meta returns metadata about the last load attempt.
func (p *Provider) Meta() LoadMeta {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meta
}

// Reload fetches, cleans, and swaps in a new snapshot unconditionally.
func (p *Provider) Reload(ctx context.Context) error {
	p.loading.Lock()
	defer p.loading.Unlock()
	return p.load(ctx)
}

// refresh reloads only when the snapshot is still stale. Concurrent
// refreshes collapse into one; the loser reuses the winner's result.
func (p *Provider) refresh(ctx context.Context) error {
	p.loading.Lock()
	defer p.loading.Unlock()
	if !p.stale() {
		return nil
	}
	return p.load(ctx)
}

// load does the fetch/clean/swap. Caller must hold p.loading.
func (p *Provider) load(ctx context.Context) error {
	raw, err := p.source.Load(ctx)
	if err != nil {
		err = fmt.Errorf("load catalog from %s: %w", p.source.Name(), err)
		p.recordError(err)
		return err
	}

	parts, stats := Clean(raw)
	if len(parts) == 0 {
		err := fmt.Errorf("no valid records remaining after cleaning (%d raw rows)", stats.Input)
		p.recordError(err)
		return err
	}

	p.mu.Lock()
	p.snapshot = parts
	p.meta = LoadMeta{
		Source:      p.source.Name(),
		LoadedAt:    time.Now(),
		RecordCount: len(parts),
		Stats:       stats,
	}
	p.mu.Unlock()

	p.logger.Info("catalog loaded",
		zap.String("source", p.source.Name()),
		zap.Int("records", len(parts)),
		zap.Int("invalid", stats.Invalid),
		zap.Int("duplicates", stats.Duplicates),
	)
	return nil
}

func (p *Provider) recordError(err error) {
	p.mu.Lock()
	p.meta.LastError = err.Error()
	p.mu.Unlock()
}

// stale reports whether the snapshot is missing or past its TTL.
func (p *Provider) stale() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot == nil {
		return true
	}
	if p.ttl <= 0 {
		return false
	}
	return time.Since(p.meta.LoadedAt) > p.ttl
}
