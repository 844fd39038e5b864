package buildcache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpToDate reports whether the given source image was already converted
// from identical content. A cache miss or hash mismatch means the file
// must be converted again.
func (d *DB) UpToDate(sourcePath, contentHash string) (bool, error) {
	var stored string
	err := d.QueryRow(
		`SELECT content_hash FROM og_images WHERE source_path = ?`, sourcePath,
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying image cache: %w", err)
	}
	return stored == contentHash, nil
}

// MarkConverted records a successful conversion of sourcePath.
func (d *DB) MarkConverted(sourcePath, contentHash, outputPath string) error {
	_, err := d.Exec(
		`INSERT INTO og_images (source_path, content_hash, output_path, converted_at)
		 VALUES (?, ?, ?, datetime('now'))
		 ON CONFLICT(source_path) DO UPDATE SET
		   content_hash = excluded.content_hash,
		   output_path = excluded.output_path,
		   converted_at = excluded.converted_at`,
		sourcePath, contentHash, outputPath,
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// Build is one recorded build run.
type Build struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Pages      int
	Images     int
}

// StartBuild records the start of a build and returns its id.
func (d *DB) StartBuild(start time.Time) (string, error) {
	id := uuid.NewString()
	_, err := d.Exec(
		`INSERT INTO builds (id, started_at) VALUES (?, ?)`,
		id, start.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording build start: %w", err)
	}
	return id, nil
}

// FinishBuild records completion of the build with its page and image
// counts.
func (d *DB) FinishBuild(id string, finish time.Time, pages, images int) error {
	_, err := d.Exec(
		`UPDATE builds SET finished_at = ?, pages = ?, images = ? WHERE id = ?`,
		finish.UTC().Format(time.RFC3339), pages, images, id,
	)
	if err != nil {
		return fmt.Errorf("recording build finish: %w", err)
	}
	return nil
}

// LastBuild returns the most recently started build, or nil if none
// has been recorded.
func (d *DB) LastBuild() (*Build, error) {
	var (
		b        Build
		started  string
		finished sql.NullString
	)
	err := d.QueryRow(
		`SELECT id, started_at, finished_at, pages, images
		 FROM builds ORDER BY started_at DESC LIMIT 1`,
	).Scan(&b.ID, &started, &finished, &b.Pages, &b.Images)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last build: %w", err)
	}

	if b.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
		return nil, fmt.Errorf("parsing build start time: %w", err)
	}
	if finished.Valid {
		if b.FinishedAt, err = time.Parse(time.RFC3339, finished.String); err != nil {
			return nil, fmt.Errorf("parsing build finish time: %w", err)
		}
	}
	return &b, nil
}
