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
	// DraftPlaceholder replaces another editor's unpublished content in
	// listings: drafts are announced, never leaked.
	DraftPlaceholder = "[unpublished draft]"

	DefaultPostCap    = 100
	DefaultMaxTitle   = 200
	DefaultMaxPostLen = 10000
)

// PostService manages the blog-post collection. Creating posts requires the
// editor role; editing and deleting require ownership.
type PostService struct {
	posts      *store.Collection[models.RecordsDoc]
	cap        int
	maxTitle   int
	maxContent int
	logger     logging.Logger
	now        func() time.Time
}

func NewPostService(posts *store.Collection[models.RecordsDoc], cap, maxTitle, maxContent int, logger logging.Logger) *PostService {
	if cap <= 0 {
		cap = DefaultPostCap
	}
	if maxTitle <= 0 {
		maxTitle = DefaultMaxTitle
	}
	if maxContent <= 0 {
		maxContent = DefaultMaxPostLen
	}
	return &PostService{
		posts:      posts,
		cap:        cap,
		maxTitle:   maxTitle,
		maxContent: maxContent,
		logger:     logger,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for timestamps.
func (s *PostService) SetClock(now func() time.Time) {
	s.now = now
}

// List returns posts newest first, filtered by visibility:
//
//   - published posts go to everyone;
//   - editors additionally see every draft, with other owners' draft content
//     replaced by DraftPlaceholder and their own drafts left raw;
//   - anonymous callers and readers see published posts only.
func (s *PostService) List(ctx context.Context, ident sessions.Identity) ([]models.Record, error) {
	doc, err := s.posts.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Record, 0, len(doc.Records))
	for _, rec := range doc.Records {
		switch {
		case rec.Published:
			out = append(out, rec)
		case !ident.IsEditor():
			// drafts are invisible outside the editor pool
		case rec.OwnerID == ident.UserID:
			out = append(out, rec)
		default:
			rec.Content = DraftPlaceholder
			out = append(out, rec)
		}
	}
	return out, nil
}

// Create adds a post owned by the caller. Requires the editor role.
func (s *PostService) Create(ctx context.Context, ident sessions.Identity, title, content string, published bool) (*models.Record, error) {
	if ident.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}
	if !ident.IsEditor() {
		return nil, fmt.Errorf("%w: editor role required", common.ErrUnauthorized)
	}
	if err := s.validate(title, content); err != nil {
		return nil, err
	}

	now := s.now()
	rec := models.Record{
		ID:         uuid.NewString(),
		OwnerID:    ident.UserID,
		AuthorName: ident.Username,
		Title:      title,
		Content:    content,
		Published:  published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.posts.Update(ctx, func(doc *models.RecordsDoc) error {
		doc.Insert(rec, s.cap)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "post created", "id", rec.ID, "author", ident.Username, "published", published)
	return &rec, nil
}

// Update replaces title, content and published wholesale on the caller's own
// post. CreatedAt and OwnerID are immutable; an editor cannot edit another
// editor's post.
func (s *PostService) Update(ctx context.Context, ident sessions.Identity, id, title, content string, published bool) (*models.Record, error) {
	if ident.IsAnonymous() {
		return nil, common.ErrUnauthenticated
	}
	if err := s.validate(title, content); err != nil {
		return nil, err
	}

	var updated models.Record
	err := s.posts.Update(ctx, func(doc *models.RecordsDoc) error {
		i := doc.Find(id)
		if i < 0 {
			return common.ErrNotFound
		}
		if doc.Records[i].OwnerID != ident.UserID {
			return common.ErrUnauthorized
		}
		doc.Records[i].Title = title
		doc.Records[i].Content = content
		doc.Records[i].Published = published
		doc.Records[i].UpdatedAt = s.now()
		updated = doc.Records[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the caller's own post.
func (s *PostService) Delete(ctx context.Context, ident sessions.Identity, id string) error {
	if ident.IsAnonymous() {
		return common.ErrUnauthenticated
	}

	return s.posts.Update(ctx, func(doc *models.RecordsDoc) error {
		i := doc.Find(id)
		if i < 0 {
			return common.ErrNotFound
		}
		if doc.Records[i].OwnerID != ident.UserID {
			return common.ErrUnauthorized
		}
		doc.Records = append(doc.Records[:i], doc.Records[i+1:]...)
		return nil
	})
}

func (s *PostService) validate(title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if len([]rune(title)) > s.maxTitle {
		return fmt.Errorf("%w: title exceeds %d characters", common.ErrInvalidInput, s.maxTitle)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", common.ErrInvalidInput)
	}
	if len([]rune(content)) > s.maxContent {
		return fmt.Errorf("%w: content exceeds %d characters", common.ErrInvalidInput, s.maxContent)
	}
	return nil
}
