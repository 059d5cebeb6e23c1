package filter

import "testing"

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		query       string
		expected    bool
	}{
		{
			name:     "match in title",
			title:    "Senior Python Developer",
			query:    "python",
			expected: true,
		},
		{
			name:        "match in description only",
			title:       "Backend Engineer",
			description: "We use Go and Python on AWS",
			query:       "python",
			expected:    true,
		},
		{
			name:        "no match",
			title:       "Frontend Engineer",
			description: "React and TypeScript",
			query:       "python",
			expected:    false,
		},
		{
			name:     "diacritics stripped on both sides",
			title:    "Développeur Go",
			query:    "developpeur",
			expected: true,
		},
		{
			name:     "case insensitive",
			title:    "DevOps engineer",
			query:    "DEVOPS",
			expected: true,
		},
		{
			name:     "empty query matches everything",
			title:    "Anything",
			query:    "   ",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesQuery(tt.title, tt.description, tt.query)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
