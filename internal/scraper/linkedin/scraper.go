package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"go-jobfinder-bot/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const defaultBaseURL = "https://www.linkedin.com"

type Scraper struct {
	client  *http.Client
	baseURL string
}

func New(client *http.Client) *Scraper {
	return &Scraper{
		client:  client,
		baseURL: defaultBaseURL,
	}
}

func (s *Scraper) Name() string {
	return scraper.SourceLinkedIn
}

// Scrape reads the public (unauthenticated) job search page.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]scraper.Job, error) {
	searchURL := fmt.Sprintf("%s/jobs/search/?keywords=%s&location=Remote", s.baseURL, url.QueryEscape(query))
	doc, err := scraper.FetchDocument(ctx, s.client, searchURL)
	if err != nil {
		return nil, err
	}

	var jobs []scraper.Job
	doc.Find(".job-search-card").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= scraper.MaxJobsPerSource {
			return false
		}

		title := strings.TrimSpace(card.Find("h3.base-search-card__title").First().Text())
		company := strings.TrimSpace(card.Find("h4.base-search-card__subtitle a").First().Text())
		location := strings.TrimSpace(card.Find(".job-search-card__location").First().Text())
		href, _ := card.Find("a.base-card__full-link").First().Attr("href")

		if title == "" || company == "" || href == "" {
			log.Printf("⚠️ LinkedIn: skipping malformed card %d", i)
			return true
		}

		// the snippet is often absent on the public search page
		description := strings.TrimSpace(card.Find(".job-search-card__snippet").First().Text())
		if description == "" {
			description = "No description available"
		}

		jobs = append(jobs, scraper.Job{
			Title:       title,
			Company:     company,
			Location:    location,
			Description: description,
			URL:         scraper.ResolveURL(s.baseURL, href),
			Source:      scraper.SourceLinkedIn,
		})
		return true
	})

	return jobs, nil
}
