package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey int

const companyKey contextKey = iota

// Middleware validates the bearer token and places the company_id claim on
// the request context. Every tenant-scoped route sits behind it; the engine
// treats a missing company context as fatal, so it never gets that far.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}

				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			companyStr, _ := claims["company_id"].(string)

			companyID, err := uuid.Parse(companyStr)
			if err != nil {
				http.Error(w, "missing company claim", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), companyKey, companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CompanyID extracts the tenant id set by Middleware.
func CompanyID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(companyKey).(uuid.UUID)
	return id, ok
}
