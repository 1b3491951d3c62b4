package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is lifetime of issued API tokens
const TokenTTL = 24 * time.Hour

// CreateToken creates JWT token for API client
func CreateToken(secret string, subject string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   subject,
		ExpiresAt: now.Add(TokenTTL).Unix(),
		NotBefore: now.Unix(),
	})
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return tokenStr, nil
}

// authService implements methods for API authentication
type authService struct {
	jwtSecret []byte
}

func unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte("unauthorized"))
}

// ClientCtx checks authorization token and adds client name to context
func (s *authService) ClientCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestToken := r.Header.Get("Authorization")
		if !strings.HasPrefix(requestToken, "Bearer ") {
			unauthorized(w)
			return
		}
		requestToken = strings.TrimPrefix(requestToken, "Bearer ")
		claims := &jwt.StandardClaims{}
		// Valid() checks exp and nbf
		_, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || claims.Subject == "" {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), ctxClientKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
