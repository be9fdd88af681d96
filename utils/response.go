package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalErrorMsg is the plain-text body returned for any unexpected failure.
const InternalErrorMsg = "Error interno del servidor"

// Text writes a plain-text response with the given status code.
func Text(ctx *gin.Context, status int, message string) {
	ctx.String(status, message)
}

// JSON writes a JSON response with the given status code.
func JSON(ctx *gin.Context, status int, payload interface{}) {
	ctx.JSON(status, payload)
}

// InternalError logs the underlying cause and replies with the generic
// 500 body. The original error never reaches the client.
func InternalError(ctx *gin.Context, msg string, err error) {
	if Sugar != nil {
		Sugar.Errorw(msg, "error", err, "path", ctx.Request.URL.Path)
	}
	ctx.String(http.StatusInternalServerError, InternalErrorMsg)
}
