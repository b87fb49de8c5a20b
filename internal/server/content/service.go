// Package content manages the shared content page: one current text plus a
// bounded append-only history of superseded versions.
package content

import (
	"context"
	"fmt"
	"time"

	"inkwell/internal/common"
	"inkwell/internal/logging"
	"inkwell/internal/server/models"
	"inkwell/internal/server/sessions"
	"inkwell/internal/server/store"
)

const (
	// DefaultHistoryCap bounds the revision history; the oldest revision
	// is evicted first.
	DefaultHistoryCap = 10

	// DefaultMaxContentLen bounds the page content in characters.
	DefaultMaxContentLen = 1000
)

type Service struct {
	page       *store.Collection[models.ContentDoc]
	historyCap int
	maxContent int
	logger     logging.Logger
	now        func() time.Time
}

func NewService(page *store.Collection[models.ContentDoc], historyCap, maxContent int, logger logging.Logger) *Service {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	if maxContent <= 0 {
		maxContent = DefaultMaxContentLen
	}
	return &Service{
		page:       page,
		historyCap: historyCap,
		maxContent: maxContent,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for revision timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Get returns the page snapshot. The page is public.
func (s *Service) Get(ctx context.Context) (models.ContentDoc, error) {
	return s.page.Get(ctx)
}

// Update replaces the current content. The outgoing version is pushed onto
// the history with the caller's name; history beyond the cap is evicted
// oldest first.
func (s *Service) Update(ctx context.Context, ident sessions.Identity, content string) (models.ContentDoc, error) {
	if ident.IsAnonymous() {
		return models.ContentDoc{}, common.ErrUnauthenticated
	}
	if content == "" {
		return models.ContentDoc{}, fmt.Errorf("%w: content is required", common.ErrInvalidInput)
	}
	if len([]rune(content)) > s.maxContent {
		return models.ContentDoc{}, fmt.Errorf("%w: content exceeds %d characters", common.ErrInvalidInput, s.maxContent)
	}

	var out models.ContentDoc
	err := s.page.Update(ctx, func(doc *models.ContentDoc) error {
		if doc.Current != "" {
			doc.PushHistory(models.Revision{
				Content: doc.Current,
				Author:  ident.Username,
				SavedAt: s.now(),
			}, s.historyCap)
		}
		doc.Current = content
		out = *doc
		return nil
	})
	if err != nil {
		return models.ContentDoc{}, err
	}

	s.logger.Debug(ctx, "content updated", "author", ident.Username)
	return out, nil
}
