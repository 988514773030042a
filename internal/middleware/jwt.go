package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/groupmart/internal/apperrors"
	"github.com/a2sh3r/groupmart/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ActorKey contextKey = "actor"

// JWTMiddleware resolves the caller from a bearer token. The user_id claim
// identifies the caller; the caller is the approver when that id equals
// approverID.
func JWTMiddleware(secretKey, approverID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, apperrors.ErrInvalidAuthHeader.Error(), http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, apperrors.ErrInvalidAuthHeader.Error(), http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, apperrors.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			var userID string
			switch v := claims["user_id"].(type) {
			case string:
				userID = v
			case float64:
				userID = strconv.FormatInt(int64(v), 10)
			}
			if userID == "" {
				http.Error(w, "user_id missing in token claims", http.StatusUnauthorized)
				return
			}

			actor := models.Actor{
				UserID:     userID,
				IsApprover: approverID != "" && userID == approverID,
			}
			ctx := context.WithValue(r.Context(), ActorKey, actor)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetActor(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(models.Actor)
	return actor, ok
}

func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// IssueToken signs a caller token for userID.
func IssueToken(secretKey, userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{"user_id": userID}
	if ttl != 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
