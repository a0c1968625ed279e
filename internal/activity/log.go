// Package activity implements the append-only day-bucket activity journal
// and its aggregation into the dashboard feed.
package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

// DefaultFeedSize bounds the dashboard feed.
const DefaultFeedSize = 10

// Log reads and writes day-bucket journal files under the Logs bucket.
// A day-bucket is identified by the UTC calendar date of append time;
// entries within it are append-only and never deleted by this core.
type Log struct {
	vault *vault.Vault
	log   *logrus.Logger
	now   func() time.Time
}

// NewLog creates a Log over the given vault.
func NewLog(v *vault.Vault, log *logrus.Logger) *Log {
	return &Log{vault: v, log: log, now: time.Now}
}

// bucketFile returns the journal file name for a moment in time.
func bucketFile(t time.Time) string {
	return fmt.Sprintf("activity_log_%s.json", t.UTC().Format("2006-01-02"))
}

// Append adds an entry to today's day-bucket: read the current sequence
// (empty when the file does not exist), append, rewrite atomically.
// Concurrent callers must serialize through a Worker; Append itself is the
// single serialization point for the read-modify-write.
func (l *Log) Append(entry models.ActivityEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now().UTC()
	}

	name := bucketFile(entry.Timestamp)
	entries, err := l.readBucket(name)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode day-bucket %s: %w", name, err)
	}

	if err := l.vault.WriteAtomic(vault.BucketLogs, name, data); err != nil {
		return err
	}

	metrics.ActivityAppendsTotal.Inc()

	return nil
}

// readBucket loads a day-bucket file. Missing file means an empty sequence;
// an unparsable file is logged and treated as empty rather than blocking
// appends for the rest of the day.
func (l *Log) readBucket(name string) ([]models.ActivityEntry, error) {
	if !l.vault.Exists(vault.BucketLogs, name) {
		return nil, nil
	}

	data, err := l.vault.Read(vault.BucketLogs, name)
	if err != nil {
		return nil, err
	}

	var entries []models.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.log.WithError(err).WithField("file", name).Warn("day-bucket unparsable, starting fresh")

		return nil, nil
	}

	return entries, nil
}

// Recent returns the most recent n entries from today's bucket, decorated
// for display, most-recent-first. When no bucket exists yet it returns the
// fixed seed feed so the dashboard is never visually empty on first run.
func (l *Log) Recent(n int) []models.FeedItem {
	if n <= 0 {
		n = DefaultFeedSize
	}

	now := l.now().UTC()
	entries, err := l.readBucket(bucketFile(now))
	if err != nil {
		l.log.WithError(err).Warn("activity feed read failed")
	}

	if len(entries) == 0 {
		return seedFeed(now)
	}

	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	feed := make([]models.FeedItem, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		feed = append(feed, entries[i].Feed())
	}

	return feed
}

// seedFeed is the system-initialized marker shown before any real activity.
func seedFeed(now time.Time) []models.FeedItem {
	return []models.FeedItem{
		models.ActivityEntry{
			Timestamp:   now,
			ActionType:  models.ActionSystemInitialized,
			Description: "AI Employee dashboard is up and monitoring the vault",
		}.Feed(),
	}
}
