package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/service"
)

type contextKey int

const (
	contextKeyOperator contextKey = iota
)

// Auth verifies the operator bearer token and passes its subject to the
// context. Used to gate the bulk-import route.
func Auth(ts service.TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			subject, err := ts.VerifyToken(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyOperator, subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
