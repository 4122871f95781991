package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// RecordPost stores a published title. A title posted before (ignoring
// case) returns ErrAlreadyPosted.
func (s *Store) RecordPost(ctx context.Context, post Post) (*Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return nil, errors.New("post title required")
	}
	if post.PostedAt.IsZero() {
		post.PostedAt = time.Now()
	}
	res, err := s.exec(ctx,
		`INSERT INTO posts (title, title_key, stresses, wiki_url, status_url, logo_path, run_id, posted_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.Title, titleKey(post.Title), post.Stresses, post.WikiURL,
		nullIfBlank(post.StatusURL), nullIfBlank(post.LogoPath), nullIfBlank(post.RunID),
		formatTime(post.PostedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyPosted, post.Title)
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	post.ID = id
	post.PostedAt = post.PostedAt.UTC()
	return &post, nil
}

// HasPosted reports whether title was posted before, ignoring case.
func (s *Store) HasPosted(ctx context.Context, title string) (bool, error) {
	var count int
	err := withBusyRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM posts WHERE title_key = ?`, titleKey(title)).Scan(&count)
	})
	if err != nil {
		return false, fmt.Errorf("check posted: %w", err)
	}
	return count > 0, nil
}

// RecentPosts lists the newest posts first.
func (s *Store) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, stresses, wiki_url, status_url, logo_path, run_id, posted_at
         FROM posts ORDER BY posted_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var (
			post      Post
			statusURL sql.NullString
			logoPath  sql.NullString
			runID     sql.NullString
			postedRaw sql.NullString
		)
		if err := rows.Scan(&post.ID, &post.Title, &post.Stresses, &post.WikiURL,
			&statusURL, &logoPath, &runID, &postedRaw); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.StatusURL = statusURL.String
		post.LogoPath = logoPath.String
		post.RunID = runID.String
		post.PostedAt = parseTime(postedRaw)
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// CountPosts returns the number of recorded posts.
func (s *Store) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}
