package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/syntaxkim/project1/internal/apperrors"
	"github.com/syntaxkim/project1/internal/models"
)

const (
	sessionKeyPrefix = "session:"

	// DefaultSessionTTL is the store's own expiry policy; the application
	// never extends or shortens individual sessions.
	DefaultSessionTTL = 24 * time.Hour
)

// SessionData binds an opaque token to the authenticated user's identity.
// A named struct, not a positional list, so there is no index-based access.
type SessionData struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// SessionService stores sessions server-side in Redis, keyed by an opaque
// token carried in a cookie.
type SessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionService(redisClient *redis.Client) *SessionService {
	return &SessionService{
		redis: redisClient,
		ttl:   DefaultSessionTTL,
	}
}

// Create issues a new session for a user who has just authenticated and
// returns the opaque token.
func (s *SessionService) Create(ctx context.Context, user *models.User) (string, error) {
	data := SessionData{UserID: user.ID, UserName: user.Name}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	token := uuid.NewString()
	if err := s.redis.Set(ctx, sessionKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	return token, nil
}

// Get resolves a token to the identity it was issued for.
func (s *SessionService) Get(ctx context.Context, token string) (*SessionData, error) {
	payload, err := s.redis.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "session not found")
		}
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	var data SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}

	return &data, nil
}

// Destroy deletes the session. Destroying an absent session is not an error.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(apperrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}
