package aggregator

import (
	"context"
	"log"

	"go-jobfinder-bot/internal/scraper"
)

// MaxResults bounds how many records one search displays.
const MaxResults = 5

//Aggregator fans a query out to every registered extractor and merges the
//results in registry order. New sources are added at construction, nothing
//here knows about individual sites.
type Aggregator struct {
	scrapers []scraper.Scraper
}

func New(scrapers ...scraper.Scraper) *Aggregator {
	return &Aggregator{scrapers: scrapers}
}

//Search runs every extractor with the same query. A failing source is logged
//and contributes zero records; it never aborts the remaining sources. The
//combined list keeps duplicates across sources and is truncated to MaxResults.
func (a *Aggregator) Search(ctx context.Context, query string) []scraper.Job {
	var allJobs []scraper.Job
	for _, s := range a.scrapers {
		jobs, err := s.Scrape(ctx, query)
		if err != nil {
			log.Printf("❌ %s scrape failed: %v", s.Name(), err)
			continue
		}
		log.Printf("✅ %s returned %d jobs for %q", s.Name(), len(jobs), query)
		allJobs = append(allJobs, jobs...)
	}

	if len(allJobs) > MaxResults {
		allJobs = allJobs[:MaxResults]
	}
	return allJobs
}
