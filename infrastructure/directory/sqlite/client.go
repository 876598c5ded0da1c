// ABOUTME: SQLite-backed follower directory adapter
// ABOUTME: Returns deduplicated follower ids in stable followship-creation order

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// Client implements the FollowerDirectory interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewFollowerDirectory creates a new SQLite follower directory
func NewFollowerDirectory(filePath string) (*Client, error) {
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

// initSchema creates the followships table if it doesn't exist.
// The primary key deduplicates; created_at gives the stable order the
// batch partitioner relies on.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS followships (
			from_user_id TEXT NOT NULL,
			to_user_id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (from_user_id, to_user_id)
		);
		CREATE INDEX IF NOT EXISTS idx_followships_to_created
			ON followships(to_user_id, created_at);
	`

	_, err := c.db.Exec(query)
	return err
}

// GetFollowerIDs returns all follower ids of the publisher, ordered by
// followship creation time (ties break on follower id). The same graph
// snapshot always yields the same sequence.
func (c *Client) GetFollowerIDs(ctx context.Context, publisherID string) ([]string, error) {
	if publisherID == "" {
		return nil, errors.New("publisher id cannot be empty")
	}

	rows, err := sq.Select("from_user_id").
		From("followships").
		Where(sq.Eq{"to_user_id": publisherID}).
		OrderBy("created_at ASC", "from_user_id ASC").
		RunWith(c.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query followers: %w", err)
	}
	defer rows.Close()

	var followerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan follower id: %w", err)
		}
		followerIDs = append(followerIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return followerIDs, nil
}

// CreateFollowship records fromUserID following toUserID. Creating an
// existing followship is a no-op. Exists for the surrounding
// application and tests; the fan-out core only reads.
func (c *Client) CreateFollowship(ctx context.Context, fromUserID, toUserID string) error {
	if fromUserID == "" || toUserID == "" {
		return errors.New("followship user ids cannot be empty")
	}

	_, err := sq.Insert("followships").
		Columns("from_user_id", "to_user_id", "created_at").
		Values(fromUserID, toUserID, time.Now().UTC().UnixNano()).
		Suffix("ON CONFLICT (from_user_id, to_user_id) DO NOTHING").
		RunWith(c.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to create followship: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
