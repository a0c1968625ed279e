// Package vault provides the directory tree that serves as the durable
// store of record. Each bucket is a named subdirectory representing one
// workflow state; the package owns no workflow logic, only read, write,
// rename, and list primitives over files.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Workflow state buckets.
const (
	BucketNeedsAction = "Needs_Action"
	BucketPending     = "Pending_Approval"
	BucketApproved    = "Approved"
	BucketRejected    = "Rejected"
	BucketDone        = "Done"
	BucketPlans       = "Plans"
	BucketBriefings   = "Briefings"
	BucketLogs        = "Logs"
)

// Buckets lists every bucket EnsureBuckets creates.
var Buckets = []string{
	BucketNeedsAction,
	BucketPending,
	BucketApproved,
	BucketRejected,
	BucketDone,
	BucketPlans,
	BucketBriefings,
	BucketLogs,
}

// Vault is a handle on the root directory.
type Vault struct {
	root string
	log  *logrus.Logger
}

// New creates a Vault rooted at the given directory.
func New(root string, log *logrus.Logger) *Vault {
	return &Vault{root: root, log: log}
}

// Root returns the vault root directory.
func (v *Vault) Root() string { return v.root }

// Path returns the absolute path of a file inside a bucket. With no name it
// returns the bucket directory itself.
func (v *Vault) Path(bucket string, name ...string) string {
	parts := append([]string{v.root, bucket}, name...)

	return filepath.Join(parts...)
}

// EnsureBuckets creates every state bucket. Idempotent.
func (v *Vault) EnsureBuckets() error {
	for _, b := range Buckets {
		if err := v.EnsureBucket(b); err != nil {
			return err
		}
	}

	return nil
}

// EnsureBucket creates a single bucket directory. Idempotent.
func (v *Vault) EnsureBucket(bucket string) error {
	if err := os.MkdirAll(v.Path(bucket), 0o755); err != nil {
		return fmt.Errorf("ensure bucket %s: %w", bucket, err)
	}

	return nil
}

// List returns the file names in a bucket that carry the given extension,
// sorted for deterministic listings. A missing bucket lists as empty.
func (v *Vault) List(bucket, ext string) ([]string, error) {
	entries, err := os.ReadDir(v.Path(bucket))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("list bucket %s: %w", bucket, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Read returns the contents of a file in a bucket.
func (v *Vault) Read(bucket, name string) ([]byte, error) {
	data, err := os.ReadFile(v.Path(bucket, name))
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", bucket, name, err)
	}

	return data, nil
}

// Exists reports whether a file is present in a bucket.
func (v *Vault) Exists(bucket, name string) bool {
	_, err := os.Stat(v.Path(bucket, name))

	return err == nil
}

// WriteAtomic writes a file via temp-file-plus-rename so readers never
// observe a partially written file.
func (v *Vault) WriteAtomic(bucket, name string, data []byte) error {
	if err := v.EnsureBucket(bucket); err != nil {
		return err
	}

	dir := v.Path(bucket)
	tmp, err := os.CreateTemp(dir, "."+name+".tmp*")
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", bucket, name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s/%s: %w", bucket, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s/%s: %w", bucket, name, err)
	}

	if err := os.Rename(tmp.Name(), v.Path(bucket, name)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s/%s: %w", bucket, name, err)
	}

	return nil
}

// Rename moves a file between buckets. The destination bucket is created
// first (idempotent) so the rename never races directory creation. The move
// is a single os.Rename; a file is never present in two buckets at once.
// If the source no longer exists the underlying not-exist error is returned
// for the caller to classify.
func (v *Vault) Rename(fromBucket, name, toBucket string) error {
	if err := v.EnsureBucket(toBucket); err != nil {
		return err
	}

	if err := os.Rename(v.Path(fromBucket, name), v.Path(toBucket, name)); err != nil {
		return fmt.Errorf("rename %s/%s to %s: %w", fromBucket, name, toBucket, err)
	}

	v.log.WithFields(logrus.Fields{
		"file": name,
		"from": fromBucket,
		"to":   toBucket,
	}).Debug("vault file moved")

	return nil
}

// ReadDoc returns a document that lives at the vault root, outside any bucket.
func (v *Vault) ReadDoc(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(v.root, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return data, nil
}

// WriteDocAtomic writes a root-level document via temp-file-plus-rename.
func (v *Vault) WriteDocAtomic(name string, data []byte) error {
	if err := os.MkdirAll(v.root, 0o755); err != nil {
		return fmt.Errorf("ensure vault root: %w", err)
	}

	tmp, err := os.CreateTemp(v.root, "."+name+".tmp*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(v.root, name)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

// Count returns the number of files with the given extension in a bucket.
func (v *Vault) Count(bucket, ext string) int {
	names, err := v.List(bucket, ext)
	if err != nil {
		v.log.WithError(err).WithField("bucket", bucket).Warn("bucket count failed")

		return 0
	}

	return len(names)
}
