package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"materialhub/crawler/internal/crawl"
	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/repository"
	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/state"

	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"
)

// Service drives crawls end to end: it selects adapters from the registry,
// consumes each crawl's event stream, hands products to the repository and
// records stats when a source finishes.
type Service struct {
	registry *source.Registry
	repo     repository.ProductRepository
	stats    state.StatsRecorder
}

func NewService(registry *source.Registry, repo repository.ProductRepository, stats state.StatsRecorder) *Service {
	return &Service{
		registry: registry,
		repo:     repo,
		stats:    stats,
	}
}

// CrawlSource runs one source's crawl to completion, draining the event
// stream as it is produced. Failed persists are logged and skipped; the
// stream itself always reaches complete.
func (s *Service) CrawlSource(ctx context.Context, sourceID string, categoryIDs []string) error {
	entry, ok := s.registry.Get(sourceID)
	if !ok {
		return fmt.Errorf("unknown source %q", sourceID)
	}

	if len(categoryIDs) == 0 {
		categoryIDs = allCategoryIDs(entry.Adapter)
	}

	log.Infof("🔄 Crawling source %s (%s), %d requested categories", entry.Name, sourceID, len(categoryIDs))

	saved := 0
	for event := range crawl.Run(ctx, entry.Adapter, categoryIDs) {
		switch event.Type {
		case domain.EventProgress:
			log.Infof("%s: %d%% (%s)", sourceID, event.Percent, event.Category)

		case domain.EventProduct:
			if s.repo != nil {
				if err := s.repo.Upsert(ctx, event.Product); err != nil {
					log.Errorf("❌ Failed to save product %q from %s: %v", event.Product.Name, sourceID, err)
					continue
				}
			}
			saved++

		case domain.EventError:
			log.Warnf("⚠️ %s: %s", sourceID, event.Message)

		case domain.EventComplete:
			log.Infof("✅ Completed %s: %d products", sourceID, saved)
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if s.stats != nil {
		if err := s.stats.RecordCrawl(ctx, sourceID, saved, time.Now()); err != nil {
			log.Errorf("❌ Failed to record crawl stats for %s: %v", sourceID, err)
		}
	}

	return nil
}

// allCategoryIDs is the default request when none is configured: every
// category of the source, in a stable order.
func allCategoryIDs(adapter source.Adapter) []string {
	categories := adapter.Categories()
	ids := make([]string, 0, len(categories))
	for id := range categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CrawlSources runs the requested sources concurrently. Adapters share no
// state, so each crawl paces itself against its own source independently.
func (s *Service) CrawlSources(ctx context.Context, sourceIDs []string, categoryIDs []string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, sourceID := range sourceIDs {
		sourceID := sourceID
		g.Go(func() error {
			return s.CrawlSource(ctx, sourceID, categoryIDs)
		})
	}

	return g.Wait()
}
