package app

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"stayhub/internal/domain"
)

type AuthService struct {
	users  domain.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(u domain.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: u, secret: []byte(secret), ttl: ttl}
}

type accessClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.CreateUser(ctx, email, string(hash))
}

// Login verifies the credentials and issues a signed access token. Wrong email
// and wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := accessClaims{
		UserID: u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// UserID validates the token and returns the subject's id.
func (s *AuthService) UserID(token string) (int64, error) {
	t, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, domain.ErrInvalidCredentials
	}
	c, ok := t.Claims.(*accessClaims)
	if !ok || !t.Valid {
		return 0, domain.ErrInvalidCredentials
	}
	return c.UserID, nil
}

func (s *AuthService) Me(ctx context.Context, id int64) (domain.User, error) {
	return s.users.GetUser(ctx, id)
}
