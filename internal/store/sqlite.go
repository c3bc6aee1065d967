package store

import (
	"database/sql"
	"time"

	"github.com/glasscast/glasscast/internal/models"
)

// Store persists the notification history log. Weather data is never
// persisted; every snapshot is live.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertNotification(n models.Notification) error {
	_, err := s.db.Exec(`
		INSERT INTO notifications (id, title, message, severity, created_at, ttl_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, n.ID, n.Title, n.Message, string(n.Severity), n.CreatedAt.UTC(), n.TTL.Milliseconds())
	return err
}

// ListRecentNotifications returns up to limit history entries, newest
// first.
func (s *Store) ListRecentNotifications(limit int) ([]models.Notification, error) {
	rows, err := s.db.Query(`
		SELECT id, title, message, severity, created_at, ttl_ms
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		var severity string
		var ttlMs int64
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &severity, &n.CreatedAt, &ttlMs); err != nil {
			return nil, err
		}
		n.Severity = models.Severity(severity)
		n.TTL = time.Duration(ttlMs) * time.Millisecond
		out = append(out, n)
	}
	return out, rows.Err()
}

// PruneNotifications removes history entries older than the cutoff.
func (s *Store) PruneNotifications(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM notifications WHERE created_at < ?`, olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
