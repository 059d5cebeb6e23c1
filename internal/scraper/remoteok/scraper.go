package remoteok

import (
	"context"
	"log"
	"net/http"
	"strings"

	"go-jobfinder-bot/internal/filter"
	"go-jobfinder-bot/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const defaultBaseURL = "https://remoteok.io"

// RemoteOK has no keyword search endpoint worth hitting; we fetch the dev
// listing page and filter cards against the query locally.
const listingPath = "/remote-dev-jobs"

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
	return scraper.SourceRemoteOK
}

func (s *Scraper) Scrape(ctx context.Context, query string) ([]scraper.Job, error) {
	doc, err := scraper.FetchDocument(ctx, s.client, s.baseURL+listingPath)
	if err != nil {
		return nil, err
	}

	var jobs []scraper.Job
	doc.Find("tr.job").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= scraper.MaxJobsPerSource {
			return false
		}

		// ad rows and expanded description rows have no data-company
		company, ok := card.Attr("data-company")
		if !ok || strings.TrimSpace(company) == "" {
			return true
		}

		link := card.Find("h2 a").First()
		title := strings.TrimSpace(link.Text())
		description := strings.TrimSpace(card.Find(".description").First().Text())
		href, _ := link.Attr("href")

		if title == "" || href == "" {
			log.Printf("⚠️ RemoteOK: skipping malformed card %d", i)
			return true
		}

		if !filter.MatchesQuery(title, description, query) {
			return true
		}

		jobs = append(jobs, scraper.Job{
			Title:       title,
			Company:     strings.TrimSpace(company),
			Location:    "Remote",
			Description: description,
			URL:         scraper.ResolveURL(s.baseURL, href),
			Source:      scraper.SourceRemoteOK,
		})
		return true
	})

	return jobs, nil
}
