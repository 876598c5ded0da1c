// ABOUTME: SQLite-backed feed store with idempotent single and bulk inserts
// ABOUTME: The (recipient_id, post_id) primary key is the sole duplicate-fan-out guard

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"newsfeed-app-api/core/domain"
)

// Client implements the FeedStore interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewFeedStore creates a new SQLite feed store
func NewFeedStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "newsfeeds.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the newsfeeds table if it doesn't exist.
// created_at is stored as unix nanoseconds so ordering is a plain
// integer comparison.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS newsfeeds (
			recipient_id TEXT NOT NULL,
			post_id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (recipient_id, post_id)
		);
		CREATE INDEX IF NOT EXISTS idx_newsfeeds_recipient_created
			ON newsfeeds(recipient_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_newsfeeds_created
			ON newsfeeds(created_at);
	`

	_, err := c.db.Exec(query)
	return err
}

// InsertEntry persists a single feed entry. A duplicate
// (recipient, post) pair is ignored. Returns true if a row was created.
func (c *Client) InsertEntry(ctx context.Context, entry *domain.NewsFeed) (bool, error) {
	if entry == nil {
		return false, errors.New("entry cannot be nil")
	}
	if err := entry.Validate(); err != nil {
		return false, err
	}

	result, err := sq.Insert("newsfeeds").
		Columns("recipient_id", "post_id", "created_at").
		Values(entry.RecipientID, entry.PostID, entry.CreatedAt.UnixNano()).
		Suffix("ON CONFLICT (recipient_id, post_id) DO NOTHING").
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert feed entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// BulkInsertEntries persists a batch of entries in a single statement.
// Entries whose (recipient, post) pair already exists are skipped
// without failing the batch. Returns the number of rows created.
func (c *Client) BulkInsertEntries(ctx context.Context, entries []*domain.NewsFeed) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	builder := sq.Insert("newsfeeds").
		Columns("recipient_id", "post_id", "created_at")

	for _, entry := range entries {
		if entry == nil {
			return 0, errors.New("entry cannot be nil")
		}
		if err := entry.Validate(); err != nil {
			return 0, err
		}
		builder = builder.Values(entry.RecipientID, entry.PostID, entry.CreatedAt.UnixNano())
	}

	result, err := builder.
		Suffix("ON CONFLICT (recipient_id, post_id) DO NOTHING").
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert feed entries: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

// ListRecentEntries returns up to limit entries for a recipient, most
// recent first. Ties on created_at break on post_id so the order is a
// total one.
func (c *Client) ListRecentEntries(ctx context.Context, recipientID string, limit int) ([]domain.NewsFeed, error) {
	if recipientID == "" {
		return nil, errors.New("recipient id cannot be empty")
	}
	if limit <= 0 {
		return []domain.NewsFeed{}, nil
	}

	rows, err := sq.Select("post_id", "created_at").
		From("newsfeeds").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "post_id DESC").
		Limit(uint64(limit)).
		RunWith(c.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.NewsFeed, 0, limit)
	for rows.Next() {
		var postID string
		var createdAt int64
		if err := rows.Scan(&postID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan feed entry: %w", err)
		}
		entries = append(entries, domain.NewsFeed{
			RecipientID: recipientID,
			PostID:      postID,
			CreatedAt:   time.Unix(0, createdAt).UTC(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteEntriesBefore removes entries created before the cutoff.
// Returns the number of rows removed.
func (c *Client) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := sq.Delete("newsfeeds").
		Where(sq.Lt{"created_at": cutoff.UnixNano()}).
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete feed entries: %w", err)
	}

	return result.RowsAffected()
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
