// Package approval implements the directory-backed approval repository:
// listing pending requests and applying decisions as atomic bucket moves.
package approval

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

// fileExt is the recognized extension for approval files.
const fileExt = ".md"

// Repository reads and transitions approval request files in the vault.
type Repository struct {
	vault *vault.Vault
	log   *logrus.Logger
	now   func() time.Time
}

// NewRepository creates a Repository over the given vault.
func NewRepository(v *vault.Vault, log *logrus.Logger) *Repository {
	return &Repository{vault: v, log: log, now: time.Now}
}

// ListPending returns one ApprovalRequest per recognized file in the
// pending bucket, in directory-listing order. A single corrupt file yields
// a record with empty optional fields rather than failing the listing.
func (r *Repository) ListPending(ctx context.Context) ([]models.ApprovalRequest, error) {
	names, err := r.vault.List(vault.BucketPending, fileExt)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	requests := make([]models.ApprovalRequest, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := r.vault.Read(vault.BucketPending, name)
		if err != nil {
			// The file may have been decided between listing and reading.
			r.log.WithError(err).WithField("file", name).Warn("pending file unreadable, skipping")
			continue
		}

		requests = append(requests, parseRequest(name, content))
	}

	return requests, nil
}

// Decide locates the pending file matching id and transitions it to the
// outcome's bucket: destination directory creation first (idempotent), then
// a single rename, then the status header rewrite with the decision
// timestamp. Two decisions racing on the same id are resolved by the
// storage layer: the loser's rename fails because the source file is gone,
// which is reported as ErrApprovalNotFound, never as a fault and never as a
// second execution.
func (r *Repository) Decide(ctx context.Context, id string, outcome models.Outcome) (*models.ApprovalRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := r.findPendingFile(id)
	if err != nil {
		return nil, err
	}

	dest := vault.BucketApproved
	if outcome == models.OutcomeReject {
		dest = vault.BucketRejected
	}

	if err := r.vault.Rename(vault.BucketPending, name, dest); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Lost the race against a concurrent decision.
			return nil, models.ErrApprovalNotFound
		}

		return nil, err
	}

	decidedAt := r.now().UTC()
	if err := r.markDecided(name, dest, outcome.Status(), decidedAt); err != nil {
		// The transition itself is committed; the header rewrite failing is
		// a storage write failure the caller needs to know about.
		return nil, err
	}

	content, err := r.vault.Read(dest, name)
	if err != nil {
		return nil, err
	}

	req := parseRequest(name, content)
	req.Status = outcome.Status()
	if req.DecidedAt == nil {
		req.DecidedAt = &decidedAt
	}

	r.log.WithFields(logrus.Fields{
		"id":      req.ID,
		"outcome": outcome,
		"file":    name,
	}).Info("approval decided")

	return &req, nil
}

// findPendingFile matches by identifier against the file name, not by
// parsing file contents: exact stem match first, substring as fallback.
func (r *Repository) findPendingFile(id string) (string, error) {
	names, err := r.vault.List(vault.BucketPending, fileExt)
	if err != nil {
		return "", fmt.Errorf("locate approval %s: %w", id, err)
	}

	for _, name := range names {
		if idFromFilename(name) == id {
			return name, nil
		}
	}
	for _, name := range names {
		if strings.Contains(name, id) {
			return name, nil
		}
	}

	return "", models.ErrApprovalNotFound
}

// markDecided rewrites the status header field of the moved file in place.
func (r *Repository) markDecided(name, bucket string, status models.Status, decidedAt time.Time) error {
	content, err := r.vault.Read(bucket, name)
	if err != nil {
		return err
	}

	updated, matched := rewriteStatus(content, status, decidedAt)
	if !matched {
		r.log.WithField("file", name).Warn("status header absent, inserting decision fields")
	}

	return r.vault.WriteAtomic(bucket, name, updated)
}
