package http

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware verifies the bearer ID token and injects the caller's claims
// into the request context.
func AuthMiddleware(verifier security.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			if token == "" {
				writeStatusError(w, status.Error(codes.Unauthenticated, "authorization token is not provided"))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeStatusError(w, status.Errorf(codes.Unauthenticated, "invalid token: %v", err))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the verified caller claims set by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.Claims)
	return claims, ok
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return header
}
