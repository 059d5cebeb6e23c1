package indeed

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

const defaultBaseURL = "https://www.indeed.com"

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
	return scraper.SourceIndeed
}

func (s *Scraper) Scrape(ctx context.Context, query string) ([]scraper.Job, error) {
	searchURL := fmt.Sprintf("%s/jobs?q=%s&l=Remote", s.baseURL, url.QueryEscape(query))
	doc, err := scraper.FetchDocument(ctx, s.client, searchURL)
	if err != nil {
		return nil, err
	}

	var jobs []scraper.Job
	doc.Find(".job_seen_beacon").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= scraper.MaxJobsPerSource {
			return false
		}

		title := strings.TrimSpace(card.Find("h2.jobTitle").First().Text())
		company := strings.TrimSpace(card.Find(".companyName").First().Text())
		location := strings.TrimSpace(card.Find(".companyLocation").First().Text())
		snippet := strings.TrimSpace(card.Find(".job-snippet").First().Text())
		href, _ := card.Find("h2.jobTitle a").First().Attr("href")

		if title == "" || company == "" || href == "" {
			log.Printf("⚠️ Indeed: skipping malformed card %d", i)
			return true
		}

		jobs = append(jobs, scraper.Job{
			Title:       title,
			Company:     company,
			Location:    location,
			Description: snippet,
			URL:         scraper.ResolveURL(s.baseURL, href),
			Source:      scraper.SourceIndeed,
		})
		return true
	})

	return jobs, nil
}
