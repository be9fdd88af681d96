package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ldelgadom/partidas-api/utils"
)

const (
	// ContextUserIDKey is the key used to store the authenticated uid in Gin context.
	ContextUserIDKey = "user_id"
	// ContextEmailKey stores the account email inside Gin context.
	ContextEmailKey = "email"
)

// AuthRequired ensures the request carries a valid bearer token. On any
// failure it writes the rejection itself and aborts, so downstream handlers
// only ever run with a resolved uid in the context.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Text(ctx, http.StatusUnauthorized, "Cabecera de autorización requerida")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Text(ctx, http.StatusUnauthorized, "Formato de autorización inválido")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Text(ctx, http.StatusUnauthorized, "Token requerido")
			ctx.Abort()
			return
		}

		if utils.IsTokenBlacklisted(tokenString) {
			utils.Text(ctx, http.StatusUnauthorized, "Token revocado")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.Text(ctx, http.StatusUnauthorized, "Token inválido")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDKey, claims.UID)
		ctx.Set(ContextEmailKey, claims.Email)
		ctx.Next()
	}
}
