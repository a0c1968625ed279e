package activity

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// defaultQueueSize is the append queue capacity.
const defaultQueueSize = 1000

// Worker serializes day-bucket appends through a single goroutine so
// concurrent writers never race on the read-modify-write of the same file.
type Worker struct {
	journal *Log
	log     *logrus.Logger
	jobs    chan models.ActivityEntry
}

// NewWorker creates a Worker with the given queue capacity.
func NewWorker(journal *Log, log *logrus.Logger, queueSize int) *Worker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Worker{
		journal: journal,
		log:     log,
		jobs:    make(chan models.ActivityEntry, queueSize),
	}
}

// Enqueue adds an entry. Non-blocking; drops the entry if the queue is full.
func (w *Worker) Enqueue(entry models.ActivityEntry) {
	select {
	case w.jobs <- entry:
	default:
		w.log.WithField("action", entry.ActionType).Warn("activity queue full, dropping entry")
	}
}

// Run processes appends until the context is cancelled, then drains the queue.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case entry := <-w.jobs:
			w.process(entry)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case entry := <-w.jobs:
			w.process(entry)
		default:
			return
		}
	}
}

func (w *Worker) process(entry models.ActivityEntry) {
	if err := w.journal.Append(entry); err != nil {
		w.log.WithError(err).Warn("activity append failed")
	}
}
