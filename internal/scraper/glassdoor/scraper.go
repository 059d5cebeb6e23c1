package glassdoor

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go-jobfinder-bot/internal/scraper"

	"github.com/PuerkitoBio/goquery"
)

const defaultBaseURL = "https://www.glassdoor.com"

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
	return scraper.SourceGlassdoor
}

func (s *Scraper) Scrape(ctx context.Context, query string) ([]scraper.Job, error) {
	//slugify query: "python developer" -> "python-developer"
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(query)), " ", "-")
	searchURL := fmt.Sprintf("%s/Job/%s-jobs-SRCH_IL.0,6_IS%s_KO7,7.htm", s.baseURL, slug, slug)
	doc, err := scraper.FetchDocument(ctx, s.client, searchURL)
	if err != nil {
		return nil, err
	}

	var jobs []scraper.Job
	doc.Find(".react-job-listing").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= scraper.MaxJobsPerSource {
			return false
		}

		link := card.Find(".jobLink").First()
		title := strings.TrimSpace(link.Text())
		company := strings.TrimSpace(card.Find(".jobHeader .jobEmpName").First().Text())
		location := strings.TrimSpace(card.Find(".loc").First().Text())
		description := strings.TrimSpace(card.Find(".jobDescription").First().Text())
		href, _ := link.Attr("href")

		if title == "" || company == "" || href == "" {
			log.Printf("⚠️ Glassdoor: skipping malformed card %d", i)
			return true
		}

		jobs = append(jobs, scraper.Job{
			Title:       title,
			Company:     company,
			Location:    location,
			Description: description,
			URL:         scraper.ResolveURL(s.baseURL, href),
			Source:      scraper.SourceGlassdoor,
		})
		return true
	})

	return jobs, nil
}
