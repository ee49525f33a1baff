package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound возвращается, когда токен отсутствует или истек
var ErrSessionNotFound = errors.New("session not found")

// Session - состояние аутентифицированного пользователя
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store определяет контракт хранилища сессий
type Store interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore хранит сессии в Redis под непрозрачным UUID-токеном
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: client,
		ttl:         ttl,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create сохраняет сессию и возвращает новый токен
func (s *RedisStore) Create(ctx context.Context, sess Session) (string, error) {
	token := uuid.NewString()
	val, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(token), val, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get возвращает сессию по токену
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(val, sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

// Delete удаляет сессию, отсутствующий токен не считается ошибкой
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
