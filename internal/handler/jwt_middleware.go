package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/sjjames020/TranquiliTea/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const CtxUser ctxKey = "user"

// UserResolver resuelve el sub del token a un usuario almacenado.
type UserResolver interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
}

// JWTAuth valida el header `Authorization: Bearer <token>`, resuelve el
// usuario y lo mete en el contexto. Cualquier falla (header ausente,
// firma mala, token vencido, usuario borrado) responde el mismo 401
// para no filtrar en qué paso falló.
func JWTAuth(secret string, users UserResolver) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok {
				unauthorized(w)
				return
			}
			userID, err := primitive.ObjectIDFromHex(sub)
			if err != nil {
				unauthorized(w)
				return
			}

			u, err := users.FindByID(r.Context(), userID)
			if err != nil || u == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	respondMessage(w, http.StatusUnauthorized, "Unauthorized")
}

// UserFromContext helper para sacar el usuario del contexto.
func UserFromContext(ctx context.Context) *models.UserDoc {
	if v := ctx.Value(CtxUser); v != nil {
		if u, ok := v.(*models.UserDoc); ok {
			return u
		}
	}
	return nil
}
