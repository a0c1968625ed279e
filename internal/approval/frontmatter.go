package approval

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// frontmatter is the structured header block at the top of an approval file,
// delimited by "---" fences and followed by the free-text body.
type frontmatter struct {
	ID          string  `yaml:"id"`
	Type        string  `yaml:"type"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
	Recipient   string  `yaml:"recipient"`
	Status      string  `yaml:"status"`
	Created     string  `yaml:"created"`
	Decided     string  `yaml:"decided"`
}

const fence = "---"

// splitFrontmatter separates the fenced header from the body. ok is false
// when the file has no recognizable header block.
func splitFrontmatter(content string) (header, body string, ok bool) {
	trimmed := strings.TrimLeft(content, "\uFEFF\r\n ")
	if !strings.HasPrefix(trimmed, fence) {
		return "", content, false
	}

	rest := trimmed[len(fence):]
	idx := strings.Index(rest, "\n"+fence)
	if idx < 0 {
		return "", content, false
	}

	header = strings.TrimPrefix(rest[:idx], "\n")
	body = strings.TrimPrefix(rest[idx+len(fence)+1:], "\n")

	return header, body, true
}

// parseRequest builds an ApprovalRequest from one pending-bucket file.
// Parsing is tolerant: a missing or malformed header yields a record with
// zero-value optional fields so one corrupt file never hides the rest of
// the queue. The id falls back to a filename-derived value.
func parseRequest(name string, content []byte) models.ApprovalRequest {
	req := models.ApprovalRequest{
		ID:         idFromFilename(name),
		Status:     models.StatusPending,
		SourceFile: name,
	}

	header, _, ok := splitFrontmatter(string(content))
	if !ok {
		return req
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return req
	}

	if fm.ID != "" {
		req.ID = fm.ID
	}
	req.Kind = fm.Type
	req.Title = fm.Title
	req.Description = fm.Description
	req.Amount = fm.Amount
	req.Recipient = fm.Recipient

	if fm.Status != "" {
		req.Status = models.Status(fm.Status)
	}
	if t, err := time.Parse(time.RFC3339, fm.Created); err == nil {
		req.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, fm.Decided); err == nil {
		req.DecidedAt = &t
	}

	return req
}

// idFromFilename derives the fallback identifier from the backing file name.
func idFromFilename(name string) string {
	id := strings.TrimSuffix(name, ".md")
	id = strings.TrimPrefix(id, "APPROVAL_")

	return id
}

var (
	statusLine  = regexp.MustCompile(`(?m)^status:.*$`)
	decidedLine = regexp.MustCompile(`(?m)^decided:.*$`)
)

// rewriteStatus updates the status header field and records the decision
// timestamp. Only the fenced header is touched: a body line that happens to
// start with "status:" is free text and must survive untouched. When the
// status line is absent (for example a file whose header was hand-edited)
// the fields are inserted at the top of the header instead of silently
// doing nothing.
func rewriteStatus(content []byte, status models.Status, decidedAt time.Time) ([]byte, bool) {
	text := string(content)
	statusField := fmt.Sprintf("status: %s", status)
	decidedField := fmt.Sprintf("decided: %s", decidedAt.UTC().Format(time.RFC3339))

	header, body, ok := splitFrontmatter(text)
	if !ok {
		// No header at all: synthesize one so the decision is durable.
		return []byte(fence + "\n" + statusField + "\n" + decidedField + "\n" + fence + "\n" + text), false
	}

	matched := statusLine.MatchString(header)
	if matched {
		header = statusLine.ReplaceAllString(header, statusField)
	} else {
		header = statusField + "\n" + header
	}

	if decidedLine.MatchString(header) {
		header = decidedLine.ReplaceAllString(header, decidedField)
	} else {
		header = strings.Replace(header, statusField, statusField+"\n"+decidedField, 1)
	}

	rebuilt := fence + "\n" + header
	if !strings.HasSuffix(header, "\n") {
		rebuilt += "\n"
	}
	rebuilt += fence + "\n" + body

	return []byte(rebuilt), matched
}
