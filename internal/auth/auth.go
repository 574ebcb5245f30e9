package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"naijakart/internal/models"
	"naijakart/internal/store"
)

var (
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserNotFound       = errors.New("auth: user not found")
)

// Service is the authentication provider. User records live in the KV store
// under a single key; sessions are stateless HS256 bearer tokens, so
// "current session" is whatever identity a valid token carries.
type Service struct {
	kv        store.KV
	secret    string
	accessTTL time.Duration
}

type userRecord struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewService(kv store.KV, secret string, accessTTL time.Duration) *Service {
	return &Service{kv: kv, secret: secret, accessTTL: accessTTL}
}

// Register creates a user and returns it with a fresh access token.
func (s *Service) Register(ctx context.Context, email, name, password string) (models.User, string, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.User{}, "", err
	}
	if _, exists := users[email]; exists {
		return models.User{}, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	record := userRecord{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	users[email] = record
	if err := s.saveUsers(ctx, users); err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(email, name)
	if err != nil {
		return models.User{}, "", err
	}
	return record.user(), token, nil
}

// Authenticate checks credentials and returns the user with a fresh access
// token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (models.User, string, error) {
	email = normalizeEmail(email)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.User{}, "", err
	}

	record, ok := users[email]
	if !ok {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(record.Email, record.Name)
	if err != nil {
		return models.User{}, "", err
	}
	return record.user(), token, nil
}

// Lookup returns the stored user for an authenticated email.
func (s *Service) Lookup(ctx context.Context, email string) (models.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	record, ok := users[normalizeEmail(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return record.user(), nil
}

func (s *Service) issueToken(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"exp":   time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (r userRecord) user() models.User {
	return models.User{
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) loadUsers(ctx context.Context) (map[string]userRecord, error) {
	raw, err := s.kv.Get(ctx, store.UsersKey)
	if errors.Is(err, store.ErrNotFound) {
		return make(map[string]userRecord), nil
	}
	if err != nil {
		return nil, err
	}

	users := make(map[string]userRecord)
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user records: %w", err)
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users map[string]userRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user records: %w", err)
	}
	return s.kv.Put(ctx, store.UsersKey, raw)
}
