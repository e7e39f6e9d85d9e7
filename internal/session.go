package internal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/backend"
	"github.com/sda-clothing/storefront/internal/model"
)

// Session TTL matches the backend access-token lifetime so a live session
// never carries a dead bearer token for long.
const sessionTTL = 72 * time.Hour

const sessionKeyPrefix = "storefront:session:"

// ISessions is the explicit session lifecycle: populated on login, resolved
// per request, destroyed on logout, evicted by Redis on expiry. The opaque
// string handed to the caller is a signed JWT carrying only the session id.
type ISessions interface {
	Create(ctx context.Context, s model.Session) (string, error)
	Resolve(ctx context.Context, cookie string) (model.Session, error)
	Destroy(ctx context.Context, cookie string) error
}

type SessionStore struct {
	client *redis.Client
	secret string
	logger *zap.SugaredLogger
}

func NewSessionStore(addr, secret string, logger *zap.SugaredLogger) *SessionStore {
	return &SessionStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		secret: secret,
		logger: logger,
	}
}

func (s *SessionStore) Create(ctx context.Context, sess model.Session) (string, error) {
	sess.ID = uuid.NewString()
	sess.CreatedAt = time.Now()

	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err = s.client.Set(ctx, sessionKeyPrefix+sess.ID, b, sessionTTL).Err(); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": sess.ID,
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *SessionStore) Resolve(ctx context.Context, cookie string) (model.Session, error) {
	id, err := s.sessionID(cookie)
	if err != nil {
		return model.Session{}, backend.ErrAuthRequired
	}

	b, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Session{}, backend.ErrAuthRequired
	}
	if err != nil {
		return model.Session{}, err
	}

	var sess model.Session
	if err = json.Unmarshal(b, &sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (s *SessionStore) Destroy(ctx context.Context, cookie string) error {
	id, err := s.sessionID(cookie)
	if err != nil {
		return backend.ErrAuthRequired
	}
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *SessionStore) sessionID(cookie string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", backend.ErrAuthRequired
	}
	return id, nil
}
