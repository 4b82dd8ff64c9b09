package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/focusguard/focusguard/pkg/problem"
)

// Auth validates a Bearer JWT signed with the shared secret. An empty
// secret disables the check entirely, which keeps local development and
// tests token-free.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				problem.Unauthorized("Missing authorization header").Write(w)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				problem.Unauthorized("Invalid authorization format").Write(w)
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if tokenString == "" {
				problem.Unauthorized("Invalid authorization format").Write(w)
				return
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				problem.Unauthorized("Invalid or expired token").Write(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
