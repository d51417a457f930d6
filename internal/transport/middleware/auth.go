package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"journalhub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const (
	callerIdKey   contextKey = "caller_id"
	callerRoleKey contextKey = "caller_role"
)

// Claims carries what the identity provider asserts about the caller:
// the user id in the registered sub claim and exactly one role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth resolves the bearer token to (caller id, role) and injects both into
// the request context. Identity itself is owned by the external provider;
// this layer only consumes its signed claims.
func Auth(secret string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("token validation failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				writeUnauthorized(w, "invalid token")
				return
			}

			if claims.Subject == "" || !domain.Role(claims.Role).Valid() {
				writeUnauthorized(w, "token is missing subject or role")
				return
			}

			ctx := WithCaller(r.Context(), claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithCaller injects the resolved caller identity into ctx.
func WithCaller(ctx context.Context, callerId, callerRole string) context.Context {
	ctx = context.WithValue(ctx, callerIdKey, callerId)
	return context.WithValue(ctx, callerRoleKey, callerRole)
}

func CallerId(ctx context.Context) string {
	id, _ := ctx.Value(callerIdKey).(string)
	return id
}

func CallerRole(ctx context.Context) string {
	role, _ := ctx.Value(callerRoleKey).(string)
	return role
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
