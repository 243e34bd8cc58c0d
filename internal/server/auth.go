package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiration is the lifetime of issued tokens.
const tokenExpiration = 24 * time.Hour

// Claims represents JWT claims with a subject label.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService provides JWT token generation and validation.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// GenerateToken issues a signed token for the given subject.
func (s *TokenService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a token string and returns its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

// requireAuth wraps a handler with bearer-token validation. When no token
// service is configured the handler runs unauthenticated.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	if s.tokens == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			s.errorResponse(w, http.StatusUnauthorized, "missing or malformed bearer token")
			return
		}
		if _, err := s.tokens.ValidateToken(parts[1]); err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}
