package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ldelgadom/partidas-api/models"
	"github.com/ldelgadom/partidas-api/repository"
	"github.com/ldelgadom/partidas-api/utils"
)

// UserController handles account registration, login and deletion.
type UserController struct {
	users repository.Users
}

// NewUserController creates a new UserController instance.
func NewUserController(users repository.Users) *UserController {
	return &UserController{users: users}
}

// CreateUser registers an account and returns a fresh token.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Text(ctx, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := u.users.ByEmail(ctx.Request.Context(), email)
	if err == nil {
		utils.Text(ctx, http.StatusConflict, "El usuario ya existe")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		utils.InternalError(ctx, "failed to look up user by email", err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalError(ctx, "failed to hash password", err)
		return
	}

	user := models.User{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := u.users.Insert(ctx.Request.Context(), user); err != nil {
		utils.InternalError(ctx, "failed to insert user", err)
		return
	}

	token, err := utils.GenerateToken(user.UID, user.Email, utils.TokenTTL)
	if err != nil {
		utils.InternalError(ctx, "failed to generate token", err)
		return
	}

	utils.JSON(ctx, http.StatusCreated, gin.H{
		"message": "Usuario creado exitosamente",
		"uid":     user.UID,
		"token":   token,
	})
}

// Login verifies credentials and issues a fresh token.
func (u *UserController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Text(ctx, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.users.ByEmail(ctx.Request.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		// Same message as a bad password so callers cannot probe emails.
		utils.Text(ctx, http.StatusUnauthorized, "Email o contraseña incorrectos")
		return
	}
	if err != nil {
		utils.InternalError(ctx, "failed to look up user by email", err)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Text(ctx, http.StatusUnauthorized, "Email o contraseña incorrectos")
		return
	}

	token, err := utils.GenerateToken(user.UID, user.Email, utils.TokenTTL)
	if err != nil {
		utils.InternalError(ctx, "failed to generate token", err)
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{
		"uid":   user.UID,
		"token": token,
	})
}

// DeleteUser removes an account by uid and revokes the presented token.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	uid := strings.TrimSpace(ctx.Param("id"))

	err := u.users.Delete(ctx.Request.Context(), uid)
	if errors.Is(err, repository.ErrNotFound) {
		utils.Text(ctx, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	if err != nil {
		utils.InternalError(ctx, "failed to delete user", err)
		return
	}

	// The token already passed the auth middleware; keep it from being
	// reused now that the account is gone.
	authHeader := ctx.GetHeader("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
		token := strings.TrimSpace(parts[1])
		expiresAt := time.Now().Add(utils.TokenTTL)
		if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		utils.BlacklistToken(token, expiresAt)
	}

	utils.Text(ctx, http.StatusOK, "Usuario eliminado correctamente")
}
