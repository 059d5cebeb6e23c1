// Define the canonical job record and the interface for all site extractors
// Ensure consistency

package scraper

import "context"

// Source names as rendered to the user and stored alongside saved jobs.
const (
	SourceIndeed    = "Indeed"
	SourceGlassdoor = "Glassdoor"
	SourceRemoteOK  = "RemoteOK"
	SourceLinkedIn  = "LinkedIn"
)

// MaxJobsPerSource bounds how many records a single extractor may return.
const MaxJobsPerSource = 5

type Job struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
}

//Scraper defines the interface that all site extractors must implement
type Scraper interface {
	//Scrape one page of search results for the query
	Scrape(ctx context.Context, query string) ([]Job, error)

	//Name is the site name (Indeed, Glassdoor, ...)
	Name() string
}
