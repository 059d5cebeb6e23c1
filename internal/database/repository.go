package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"go-jobfinder-bot/internal/scraper"

	_ "modernc.org/sqlite"
)

// maxSavedListed caps how many saved jobs one listing returns.
const maxSavedListed = 10

//SavedJob is a job record persisted against a specific user.
type SavedJob struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	UserID      int64
	SavedAt     time.Time
}

type Repository struct {
	db *sql.DB
}

//Open opens (or creates) the sqlite database at dbPath and ensures the jobs
//table exists.
func Open(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS jobs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT,
		company     TEXT,
		location    TEXT,
		description TEXT,
		url         TEXT,
		source      TEXT,
		user_id     INTEGER,
		saved_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating jobs table: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

//Save inserts a new saved job owned by userID. Saving the same job twice
//creates two rows; rows are never mutated in place.
func (r *Repository) Save(ctx context.Context, userID int64, job scraper.Job) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (title, company, location, description, url, source, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		job.Title, job.Company, job.Location, job.Description, job.URL, job.Source, userID)
	if err != nil {
		return fmt.Errorf("saving job for user %d: %w", userID, err)
	}
	return nil
}

//ListRecent returns the user's most recently saved jobs, newest first, capped
//at 10. The id tiebreak keeps the order stable when two saves land in the
//same second.
func (r *Repository) ListRecent(ctx context.Context, userID int64) ([]SavedJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, company, location, description, url, source, user_id, saved_at
		 FROM jobs WHERE user_id = ? ORDER BY saved_at DESC, id DESC LIMIT ?`,
		userID, maxSavedListed)
	if err != nil {
		return nil, fmt.Errorf("listing saved jobs for user %d: %w", userID, err)
	}
	defer rows.Close()

	var jobs []SavedJob
	for rows.Next() {
		var j SavedJob
		var savedAt string
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
			&j.URL, &j.Source, &j.UserID, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning saved job: %w", err)
		}
		j.SavedAt = parseTimestamp(savedAt)
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing saved jobs for user %d: %w", userID, err)
	}
	return jobs, nil
}

//Remove deletes the row only when both id and owner match. A miss is a silent
//no-op towards the caller; only the log records it.
func (r *Repository) Remove(ctx context.Context, userID, jobID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM jobs WHERE id = ? AND user_id = ?", jobID, userID)
	if err != nil {
		return fmt.Errorf("removing job %d for user %d: %w", jobID, userID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.Printf("ℹ️ Remove matched no rows (job %d, user %d)", jobID, userID)
	}
	return nil
}

// sqlite stores CURRENT_TIMESTAMP as "2006-01-02 15:04:05" text.
func parseTimestamp(raw string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
