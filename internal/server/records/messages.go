// Package records implements the CRUD core over the two record collections:
// chat messages (edit-only, visible to everyone) and blog posts
// (editor-gated, draft/published visibility). Every mutation is a
// read-modify-write over the full collection snapshot, serialized by the
// collection's lock.
package records

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/common"
	"inkwell/internal/logging"
	"inkwell/internal/server/models"
	"inkwell/internal/server/sessions"
	"inkwell/internal/server/store"
)

const (
	// DefaultMessageCap bounds the message collection; the oldest message
	// is evicted first.
	DefaultMessageCap = 100

	// DefaultMaxMessageLen bounds message content length in characters.
	DefaultMaxMessageLen = 1000
)

// MessageService manages the chat-message collection. Messages have no
// delete path: they are only ever edited by their owner or evicted by the
// collection cap.
type MessageService struct {
	msgs       *store.Collection[models.RecordsDoc]
	cap        int
	maxContent int
	logger     logging.Logger
	now        func() time.Time
}

func NewMessageService(msgs *store.Collection[models.RecordsDoc], cap, maxContent int, logger logging.Logger) *MessageService {
	if cap <= 0 {
		cap = DefaultMessageCap
	}
	if maxContent <= 0 {
		maxContent = DefaultMaxMessageLen
	}
	return &MessageService{
		msgs:       msgs,
		cap:        cap,
		maxContent: maxContent,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for timestamps.
func (s *MessageService) SetClock(now func() time.Time) {
	s.now = now
}

// List returns every message, newest first. Messages are always visible, so
// no filtering happens regardless of who asks.
func (s *MessageService) List(ctx context.Context) ([]models.Record, error) {
	doc, err := s.msgs.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Record, len(doc.Records))
	copy(out, doc.Records)
	return out, nil
}

// Create appends a message for the authenticated caller. The author's
// current username is captured on the record.
func (s *MessageService) Create(ctx context.Context, ident sessions.Identity, content string) (*models.Record, error) {
	if ident.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}
	if err := s.validateContent(content); err != nil {
		return nil, err
	}

	now := s.now()
	rec := models.Record{
		ID:         uuid.NewString(),
		OwnerID:    ident.UserID,
		AuthorName: ident.Username,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.msgs.Update(ctx, func(doc *models.RecordsDoc) error {
		doc.Insert(rec, s.cap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "message created", "id", rec.ID, "author", ident.Username)
	return &rec, nil
}

// Update replaces the content of the caller's own message. Ownership is
// required; role alone is not enough.
func (s *MessageService) Update(ctx context.Context, ident sessions.Identity, id, content string) (*models.Record, error) {
	if ident.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}
	if err := s.validateContent(content); err != nil {
		return nil, err
	}

	var updated models.Record
	err := s.msgs.Update(ctx, func(doc *models.RecordsDoc) error {
		i := doc.Find(id)
		if i < 0 {
			return common.ErrNotFound
		}
		if doc.Records[i].OwnerID != ident.UserID {
			return common.ErrUnauthorized
		}
		doc.Records[i].Content = content
		doc.Records[i].UpdatedAt = s.now()
		updated = doc.Records[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MessageService) validateContent(content string) error {
	if content == "" {
		return fmt.Errorf("%w: content is required", common.ErrInvalidInput)
	}
	if len([]rune(content)) > s.maxContent {
		return fmt.Errorf("%w: content exceeds %d characters", common.ErrInvalidInput, s.maxContent)
	}
	return nil
}
