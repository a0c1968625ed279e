package stats_test

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/stats"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newTestStore(t *testing.T) (*stats.Store, *vault.Vault) {
	t.Helper()

	v := vault.New(t.TempDir(), testLogger())
	if err := v.EnsureBuckets(); err != nil {
		t.Fatalf("EnsureBuckets: %v", err)
	}

	return stats.NewStore(v, testLogger()), v
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	if got := store.Load(); got != models.DefaultStats() {
		t.Errorf("Load with missing side-file = %+v, want defaults", got)
	}
}

func TestLoad_CorruptFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	store, v := newTestStore(t)
	if err := v.WriteAtomic(vault.BucketLogs, stats.FileName, []byte("{nope")); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if got := store.Load(); got != models.DefaultStats() {
		t.Errorf("Load with corrupt side-file = %+v, want defaults", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	want := models.Stats{
		Revenue:       1250.50,
		PendingTasks:  4,
		UnreadEmails:  7,
		UptimePercent: 98.2,
		AIActive:      false,
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := store.Load(); got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestSetAIActive_Durable(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	if err := store.SetAIActive(false); err != nil {
		t.Fatalf("SetAIActive: %v", err)
	}

	if store.Load().AIActive {
		t.Error("operating flag not persisted")
	}
}
