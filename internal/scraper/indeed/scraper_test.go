package indeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobfinder-bot/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func jobCard(n int) string {
	return fmt.Sprintf(`
		<div class="job_seen_beacon">
			<h2 class="jobTitle"><a href="/viewjob?jk=%d">Go Developer %d</a></h2>
			<span class="companyName">Acme %d</span>
			<div class="companyLocation">Remote</div>
			<div class="job-snippet">Build services in Go.</div>
		</div>`, n, n, n)
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>"+html+"</body></html>")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeParsesCards(t *testing.T) {
	srv := serveHTML(t, jobCard(1)+jobCard(2))
	s := New(srv.Client())
	s.baseURL = srv.URL

	jobs, err := s.Scrape(context.Background(), "golang")

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "Go Developer 1", jobs[0].Title)
	assert.Equal(t, "Acme 1", jobs[0].Company)
	assert.Equal(t, "Remote", jobs[0].Location)
	assert.Equal(t, "Build services in Go.", jobs[0].Description)
	assert.Equal(t, srv.URL+"/viewjob?jk=1", jobs[0].URL)
	assert.Equal(t, scraper.SourceIndeed, jobs[0].Source)
}

func TestScrapeSkipsMalformedCard(t *testing.T) {
	// second card has no company; the third must still be parsed
	broken := `
		<div class="job_seen_beacon">
			<h2 class="jobTitle"><a href="/viewjob?jk=99">Orphan Job</a></h2>
		</div>`
	srv := serveHTML(t, jobCard(1)+broken+jobCard(3))
	s := New(srv.Client())
	s.baseURL = srv.URL

	jobs, err := s.Scrape(context.Background(), "golang")

	assert.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, "Go Developer 1", jobs[0].Title)
	assert.Equal(t, "Go Developer 3", jobs[1].Title)
}

func TestScrapeCapsAtFive(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 8; i++ {
		b.WriteString(jobCard(i))
	}
	srv := serveHTML(t, b.String())
	s := New(srv.Client())
	s.baseURL = srv.URL

	jobs, err := s.Scrape(context.Background(), "golang")

	assert.NoError(t, err)
	assert.Len(t, jobs, scraper.MaxJobsPerSource)
	// document order is preserved
	assert.Equal(t, "Go Developer 1", jobs[0].Title)
	assert.Equal(t, "Go Developer 5", jobs[4].Title)
}

func TestScrapeNon200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	s := New(srv.Client())
	s.baseURL = srv.URL

	jobs, err := s.Scrape(context.Background(), "golang")

	assert.Error(t, err)
	assert.Empty(t, jobs)
}
