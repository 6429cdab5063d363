package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fpt-assistant/core/internal/repository"
)

const userIDKey = "fpt_anonymous_user_id"

var (
	generatedUserIDPattern = regexp.MustCompile(`^user_[a-z0-9]{9}_[a-z0-9]+$`)
	customUserIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
)

// IdentityService owns the anonymous user id sent with every remote call. The
// id is persisted through the repository so it survives restarts. When the
// repository fails, a process-local id is used instead.
type IdentityService struct {
	repo repository.Repository
	now  func() time.Time

	mu     sync.Mutex
	userID string
}

func NewIdentityService(repo repository.Repository) *IdentityService {
	return &IdentityService{repo: repo, now: time.Now}
}

// GenerateAnonymousUserID returns a fresh id of the form user_<9 chars>_<base36 millis>.
func GenerateAnonymousUserID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "user_" + random + "_" + strconv.FormatInt(now.UnixMilli(), 36)
}

// IsValidUserID accepts generated ids and custom ids of 3 to 50 characters
// drawn from letters, digits, underscore and dash.
func IsValidUserID(id string) bool {
	if id == "" {
		return false
	}
	return generatedUserIDPattern.MatchString(id) || customUserIDPattern.MatchString(id)
}

// GetOrCreate returns the stored id, creating and storing a new one when none
// exists or the stored one is invalid.
func (s *IdentityService) GetOrCreate(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID != "" {
		return s.userID
	}

	stored, err := s.repo.GetPreference(ctx, userIDKey)
	switch {
	case err == nil && IsValidUserID(stored):
		s.userID = stored
		return s.userID
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		slog.Warn("Could not read anonymous user id, using a session-only id", "error", err)
		s.userID = GenerateAnonymousUserID(s.now())
		return s.userID
	}

	id := GenerateAnonymousUserID(s.now())
	if err := s.repo.SetPreference(ctx, userIDKey, id); err != nil {
		slog.Warn("Could not persist anonymous user id, using a session-only id", "error", err)
	} else {
		slog.Info("Created anonymous user id", "user_id", id)
	}
	s.userID = id
	return s.userID
}

// CurrentUserID returns the id for remote calls.
func (s *IdentityService) CurrentUserID() string {
	return s.GetOrCreate(context.Background())
}

// Reset removes the stored id. The next call to GetOrCreate creates a new one.
func (s *IdentityService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	if err := s.repo.DeletePreference(ctx, userIDKey); err != nil {
		return fmt.Errorf("could not clear anonymous user id: %w", err)
	}
	return nil
}
