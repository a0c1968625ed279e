package activity_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/activity"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newTestLog(t *testing.T) (*activity.Log, *vault.Vault) {
	t.Helper()

	v := vault.New(t.TempDir(), testLogger())
	if err := v.EnsureBuckets(); err != nil {
		t.Fatalf("EnsureBuckets: %v", err)
	}

	return activity.NewLog(v, testLogger()), v
}

func todayBucket() string {
	return fmt.Sprintf("activity_log_%s.json", time.Now().UTC().Format("2006-01-02"))
}

func TestAppend_TwoEntriesInOrder(t *testing.T) {
	t.Parallel()

	journal, v := newTestLog(t)

	for _, desc := range []string{"first", "second"} {
		err := journal.Append(models.ActivityEntry{
			ActionType:  models.ActionEmailSent,
			Description: desc,
		})
		if err != nil {
			t.Fatalf("Append(%s): %v", desc, err)
		}
	}

	data, err := v.Read(vault.BucketLogs, todayBucket())
	if err != nil {
		t.Fatalf("read day-bucket: %v", err)
	}

	var entries []models.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("day-bucket not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected exactly 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "first" || entries[1].Description != "second" {
		t.Errorf("entries out of append order: %+v", entries)
	}
}

func TestRecent_LastNReversed(t *testing.T) {
	t.Parallel()

	journal, _ := newTestLog(t)

	const total = 5
	for i := 1; i <= total; i++ {
		err := journal.Append(models.ActivityEntry{
			Timestamp:   time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
			ActionType:  models.ActionEmailSent,
			Description: fmt.Sprintf("entry-%d", i),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	feed := journal.Recent(3)
	if len(feed) != 3 {
		t.Fatalf("Recent(3) returned %d items", len(feed))
	}

	// Most-recent-first: entries 5, 4, 3.
	for i, want := range []string{"entry-5", "entry-4", "entry-3"} {
		if feed[i].Description != want {
			t.Errorf("feed[%d] = %q, want %q", i, feed[i].Description, want)
		}
	}
}

func TestRecent_SeedWhenEmpty(t *testing.T) {
	t.Parallel()

	journal, _ := newTestLog(t)

	feed := journal.Recent(10)
	if len(feed) == 0 {
		t.Fatal("feed must never be empty on first run")
	}
	if feed[0].ActionType != models.ActionSystemInitialized {
		t.Errorf("seed action = %q, want system_initialized", feed[0].ActionType)
	}
	if feed[0].Title == "" || feed[0].Icon == "" {
		t.Errorf("seed feed item missing display fields: %+v", feed[0])
	}
}

func TestRecent_DecoratesEntries(t *testing.T) {
	t.Parallel()

	journal, _ := newTestLog(t)
	if err := journal.Append(models.ActivityEntry{ActionType: "mystery_action", Description: "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	feed := journal.Recent(1)
	if len(feed) != 1 {
		t.Fatalf("Recent(1) returned %d items", len(feed))
	}
	if feed[0].Title != "Activity" {
		t.Errorf("unknown action type did not fall back: %+v", feed[0].ActivityDisplay)
	}
}

func TestWorker_SerializesAppends(t *testing.T) {
	t.Parallel()

	journal, v := newTestLog(t)
	worker := activity.NewWorker(journal, testLogger(), 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	const total = 8
	for i := 0; i < total; i++ {
		worker.Enqueue(models.ActivityEntry{
			ActionType:  models.ActionApprovalDecided,
			Description: fmt.Sprintf("decision-%d", i),
		})
	}

	cancel()
	<-done // Run drains the queue before returning.

	data, err := v.Read(vault.BucketLogs, todayBucket())
	if err != nil {
		t.Fatalf("read day-bucket: %v", err)
	}
	var entries []models.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != total {
		t.Errorf("worker lost entries: got %d, want %d", len(entries), total)
	}
}
