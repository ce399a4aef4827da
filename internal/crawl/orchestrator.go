package crawl

import (
	"context"
	"fmt"
	"math"

	"materialhub/crawler/internal/domain"
	"materialhub/crawler/internal/source"

	log "github.com/sirupsen/logrus"
)

// Run crawls the requested categories of one adapter and streams the
// result as an ordered sequence of events: for each expanded category a
// progress event, then that category's product events, then the next
// category; one complete event closes the stream.
//
// Categories are walked strictly sequentially; the adapter's own rate
// limiter paces every fetch. The channel is unbuffered, so consumption
// drives the crawl: a caller that stops draining (and cancels ctx) stops
// the crawl after the current category. A category's failure becomes an
// error event and the walk continues; the stream always ends in complete.
func Run(ctx context.Context, adapter source.Adapter, ids []string) <-chan domain.Event {
	events := make(chan domain.Event)

	go func() {
		defer close(events)

		expanded := adapter.ExpandCategories(ids)
		categories := adapter.Categories()
		total := len(expanded)

		log.Infof("%s: crawling %d categories", adapter.Config().Name, total)

		for i, id := range expanded {
			label := id
			if c, ok := categories[id]; ok {
				label = c.Name
			}

			percent := int(math.Round(float64(i+1) / float64(total) * 100))
			if !send(ctx, events, domain.ProgressEvent(percent, label)) {
				return
			}

			products, err := crawlCategory(ctx, adapter, id)
			if err != nil {
				log.Warnf("%s: category %s failed: %v", adapter.Config().Name, id, err)
				if !send(ctx, events, domain.ErrorEvent(fmt.Sprintf("%s: %v", label, err))) {
					return
				}
				continue
			}

			for j := range products {
				if !send(ctx, events, domain.ProductEvent(&products[j])) {
					return
				}
			}
		}

		send(ctx, events, domain.CompleteEvent())
	}()

	return events
}

// crawlCategory isolates one category's processing: an adapter panic is
// reported as that category's error, never as a dead crawl.
func crawlCategory(ctx context.Context, adapter source.Adapter, id string) (products []domain.Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()
	return adapter.CrawlCategory(ctx, id)
}

func send(ctx context.Context, events chan<- domain.Event, e domain.Event) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
