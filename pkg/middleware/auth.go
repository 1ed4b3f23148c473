// Package middleware provides the HTTP middleware chain: authentication,
// request logging, panic recovery, and CORS.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/bazaar/pkg/auth"
	"github.com/shashiranjanraj/bazaar/pkg/response"
)

// bearerPrefix is matched case-sensitively with a single space, per the
// Authorization header contract.
const bearerPrefix = "Bearer "

// claimsKey is the unexported context key for decoded token claims.
type claimsKey struct{}

// Authenticate guards a route behind a bearer token.
//
//   - No Authorization header → 401.
//   - Header present but not "Bearer "-prefixed, or the token is
//     malformed, tampered, or expired → 403.
//   - Valid token → decoded claims are stored in the request context and
//     the request proceeds.
//
// The raw token value is never logged.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w, "Authorization header is missing")
			return
		}

		// A header without the Bearer prefix yields an empty token,
		// which fails verification below.
		token := ""
		if strings.HasPrefix(header, bearerPrefix) {
			token = header[len(bearerPrefix):]
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Forbidden(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the token claims attached by Authenticate.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}
