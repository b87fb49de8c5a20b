// Package auth implements registration, login and logout over the users
// collection, issuing sessions on success.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/common"
	"inkwell/internal/logging"
	"inkwell/internal/server/models"
	"inkwell/internal/server/sessions"
	"inkwell/internal/server/store"
)

const maxUsernameLen = 32

// dummyHash is compared against when the username does not exist, so the
// unknown-user and wrong-password paths cost roughly the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("inkwell-dummy"), bcrypt.DefaultCost)

type Service struct {
	users    *store.Collection[models.UsersDoc]
	sessions *sessions.Manager
	logger   logging.Logger
	now      func() time.Time
}

func NewService(users *store.Collection[models.UsersDoc], sm *sessions.Manager, logger logging.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sm,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for CreatedAt stamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Register creates a user and issues a session for it. The username must be
// unique (case-sensitive exact match). An empty role defaults to reader.
func (s *Service) Register(ctx context.Context, username, password string, role models.Role) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}
	if len(username) > maxUsernameLen {
		return nil, "", fmt.Errorf("%w: username exceeds %d characters", common.ErrInvalidInput, maxUsernameLen)
	}
	if role == "" {
		role = models.RoleReader
	}
	if !role.Valid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", common.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}

	// The duplicate check runs inside the collection's mutation lock so two
	// concurrent registrations cannot both claim the same username.
	err = s.users.Update(ctx, func(doc *models.UsersDoc) error {
		if doc.FindByUsername(username) != nil {
			return common.ErrDuplicateUsername
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(sessions.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info(ctx, "user registered", "username", username, "role", role)
	return &user, token, nil
}

// Login authenticates a user and issues a session. Unknown usernames and
// wrong passwords fail with the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	doc, err := s.users.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	user := doc.FindByUsername(username)
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, "", common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(sessions.Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info(ctx, "user logged in", "username", username)
	return user, token, nil
}

// Logout revokes the session. Logging out an already-dead session is not an
// error.
func (s *Service) Logout(ctx context.Context, token string) {
	s.sessions.Revoke(token)
}
