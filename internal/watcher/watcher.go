// Package watcher observes the Pending_Approval bucket on disk and pushes
// a status update to connected dashboards whenever approval files appear
// or disappear outside the API, for example when an operator moves files
// by hand in their editor.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/metrics"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/ws"
)

const debounceWindow = 250 * time.Millisecond

// Broadcaster pushes events to connected WebSocket clients.
type Broadcaster interface {
	BroadcastEvent(eventType string, data any)
}

// Watcher debounces filesystem events on the pending bucket into
// status_update broadcasts.
type Watcher struct {
	vault *vault.Vault
	hub   Broadcaster
	log   *logrus.Logger
	fsw   *fsnotify.Watcher
}

func New(v *vault.Vault, hub Broadcaster, log *logrus.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}

	return &Watcher{vault: v, hub: hub, log: log, fsw: fsw}, nil
}

// Run watches until ctx is cancelled. The pending bucket must already
// exist; callers ensure buckets at startup.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	dir := w.vault.Path(vault.BucketPending)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.WithField("dir", dir).Info("Approval watcher started")

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Approval watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			// Collapse bursts: a rename produces several events for
			// the same file within milliseconds.
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.notify()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("Approval watcher error")
		}
	}
}

// relevant reports whether the event concerns an approval file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return false
	}

	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}

func (w *Watcher) notify() {
	pending := w.vault.Count(vault.BucketPending, ".md")
	metrics.PendingApprovals.Set(float64(pending))

	w.hub.BroadcastEvent(ws.EventStatusUpdate, map[string]any{
		"pending_approvals": pending,
	})

	w.log.WithField("pending", pending).Debug("Approval bucket changed on disk")
}
