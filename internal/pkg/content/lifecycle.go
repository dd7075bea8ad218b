// Package content holds the draft/publish lifecycle rules for authored
// content: slug derivation and publish-timestamp handling. Every article
// save, create or update, funnels through PrepareForSave.
package content

import (
	"errors"
	"strings"
	"time"

	"github.com/juanrengga/seido-web/app/models"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrAuthorRequired = errors.New("author is required")
	ErrBadStatus      = errors.New("status must be draft or published")
	ErrBadCategory    = errors.New("unknown article category")
)

// Slugify derives a URL-safe slug from a title: lowercase, every maximal
// run of characters outside [a-z0-9] collapsed to a single dash, leading
// and trailing dashes trimmed. Total and idempotent.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingDash := false
	for _, r := range strings.ToLower(title) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	return b.String()
}

// PrepareForSave recomputes the derived fields of an article before it is
// written: the slug from the current title and the publish timestamp from
// the status transition. prev carries the stored state on update; pass nil
// on create.
//
// Timestamp rules:
//   - draft -> published stamps now
//   - published -> published keeps the existing timestamp
//   - any -> draft clears it, so a later republish gets a fresh date
func PrepareForSave(a *models.Article, prev *models.Article, now time.Time) error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrTitleRequired
	}
	if prev == nil && strings.TrimSpace(a.Author) == "" {
		return ErrAuthorRequired
	}
	if a.Status != models.StatusDraft && a.Status != models.StatusPublished {
		return ErrBadStatus
	}
	if a.Category != "" && !models.IsValidCategory(a.Category) {
		return ErrBadCategory
	}

	a.Slug = Slugify(a.Title)

	switch {
	case a.Status != models.StatusPublished:
		a.PublishedAt = nil
	case prev != nil && prev.Status == models.StatusPublished && prev.PublishedAt != nil:
		a.PublishedAt = prev.PublishedAt
	default:
		t := now
		a.PublishedAt = &t
	}

	return nil
}
