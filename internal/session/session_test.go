package session

import (
	"testing"

	"go-jobfinder-bot/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestGetResolvesIndexInRange(t *testing.T) {
	s := NewStore()
	jobs := []scraper.Job{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
	}
	s.Put(100, jobs)

	for i, want := range jobs {
		got, ok := s.Get(100, i)
		assert.True(t, ok)
		assert.Equal(t, want.Title, got.Title)
	}
}

func TestGetOutOfRange(t *testing.T) {
	s := NewStore()
	s.Put(100, []scraper.Job{{Title: "only"}})

	_, ok := s.Get(100, 1)
	assert.False(t, ok)
	_, ok = s.Get(100, -1)
	assert.False(t, ok)
	// unknown user has no session at all
	_, ok = s.Get(200, 0)
	assert.False(t, ok)
}

func TestPutOverwritesPreviousSearch(t *testing.T) {
	s := NewStore()
	s.Put(100, []scraper.Job{{Title: "old 0"}, {Title: "old 1"}, {Title: "old 2"}})
	s.Put(100, []scraper.Job{{Title: "new 0"}})

	got, ok := s.Get(100, 0)
	assert.True(t, ok)
	assert.Equal(t, "new 0", got.Title)

	// indexes from the old, longer session are stale now
	_, ok = s.Get(100, 2)
	assert.False(t, ok)
}
