package auth

import (
	"errors"
	"strings"
	"time"

	"cryptofx/internal/model"
	"cryptofx/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("email, name and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	users  *user.Store
	issuer string
	secret []byte
	ttl    time.Duration
}

func NewService(users *user.Store, issuer string, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, issuer: issuer, secret: secret, ttl: ttl}
}

// Register validates the form inline, stores the user with a bcrypt
// hash and returns a signed session token.
func (s *Service) Register(email, name, password, confirm string) (model.User, string, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" || password == "" {
		return model.User{}, "", ErrMissingFields
	}
	if password != confirm {
		return model.User{}, "", ErrPasswordMismatch
	}
	if len(password) < 8 {
		return model.User{}, "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", err
	}
	u, err := s.users.Create(email, name, string(hash))
	if err != nil {
		return model.User{}, "", err
	}
	token, err := s.signToken(u.ID)
	if err != nil {
		return model.User{}, "", err
	}
	return u, token, nil
}

func (s *Service) Login(email, password string) (string, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	hash, err := s.users.CredentialHash(u.ID)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.signToken(u.ID)
}

func (s *Service) GetUser(userID string) (model.User, error) {
	return s.users.Get(userID)
}

func (s *Service) signToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Service) ParseToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Issuer != s.issuer {
		return "", errors.New("invalid issuer")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid subject")
	}
	return claims.Subject, nil
}
