package source

import (
	"context"
	"time"

	"materialhub/crawler/internal/domain"
)

// Config is one source's constant network configuration. Loaded at process
// start, never mutated.
type Config struct {
	Name      string
	BaseURL   string
	Delay     time.Duration // inter-request delay, applied before every page fetch
	UserAgent string
	Headers   map[string]string
}

// Adapter is the shared contract every vendor implements: its network
// configuration, its static taxonomy, and category crawling. Taxonomy
// methods are synchronous and pure; CrawlCategory fetches one category's
// page(s) and returns the extracted products. A fetch failure is recovered
// inside the adapter (logged, empty list) so one broken category never
// aborts a crawl; a returned error means the category id itself is unusable.
type Adapter interface {
	Config() Config
	Categories() map[string]domain.Category
	ParentCategories() map[string][]string
	ExpandCategories(ids []string) []string
	CrawlCategory(ctx context.Context, id string) ([]domain.Product, error)
}
