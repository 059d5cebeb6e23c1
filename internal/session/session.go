package session

import (
	"sync"

	"go-jobfinder-bot/internal/scraper"
)

//Store caches each user's most recently displayed search results so a later
//save button press can be resolved back to the record it pointed at. Every
//new search overwrites the user's previous results wholesale; nothing here
//survives a restart. Mutex because Go maps are not thread-safe.
type Store struct {
	mu      sync.Mutex
	results map[int64][]scraper.Job
}

func NewStore() *Store {
	return &Store{results: make(map[int64][]scraper.Job)}
}

//Put replaces the user's cached results.
func (s *Store) Put(userID int64, jobs []scraper.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[userID] = jobs
}

//Get resolves a display index against the user's last search. The second
//return is false when the index is stale or out of range.
func (s *Store) Get(userID int64, index int) (scraper.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := s.results[userID]
	if index < 0 || index >= len(jobs) {
		return scraper.Job{}, false
	}
	return jobs[index], true
}
