package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"piggybank/internal/ledger"
)

type contextKey struct{}

// Claims carried in the bearer tokens the identity layer issues.
type Claims struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware validates the Authorization bearer token and stores the
// acting user in the request context. Authorization beyond "who is
// acting" (which family they may touch) stays with the identity layer
// that issued the token.
func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims Claims

			token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrInvalidKeyType
				}

				return key, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			actor := ledger.Actor{
				Role:  ledger.Role(claims.Role),
				Name:  claims.Name,
				Email: claims.Email,
			}

			if id, err := uuid.Parse(claims.Subject); err == nil {
				actor.ID = &id
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor ledger.Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// ActorFrom returns the acting user placed by Middleware.
func ActorFrom(ctx context.Context) (ledger.Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(ledger.Actor)
	return actor, ok
}

// RequireActor fetches the actor and enforces a role, writing the
// response itself when the check fails.
func RequireActor(w http.ResponseWriter, r *http.Request, role ledger.Role) (ledger.Actor, bool) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return ledger.Actor{}, false
	}

	if actor.Role != role {
		http.Error(w, "forbidden", http.StatusForbidden)
		return ledger.Actor{}, false
	}

	return actor, true
}
