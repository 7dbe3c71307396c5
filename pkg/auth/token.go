package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingEmail = errors.New("auth: token payload has no email")
	ErrInvalidToken = errors.New("auth: invalid token")
)

// reserved claims are always set by the service, never copied from the client payload
var reserved = map[string]struct{}{"exp": {}, "iat": {}, "nbf": {}}

// Identity is the verified payload of a session token.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// TokenService signs and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens, also used for the cookie Max-Age.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs payload as the token claims. payload must carry a non-empty "email".
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	email, _ := payload["email"].(string)
	if email == "" {
		return "", ErrMissingEmail
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		if _, skip := reserved[k]; skip {
			continue
		}
		claims[k] = v
	}
	now := s.now()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, algorithm and expiry and returns the embedded identity.
func (s *TokenService) Parse(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrMissingEmail
	}
	return &Identity{Email: email, Claims: claims}, nil
}
