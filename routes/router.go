package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ldelgadom/partidas-api/config"
	"github.com/ldelgadom/partidas-api/controllers"
	"github.com/ldelgadom/partidas-api/middleware"
	"github.com/ldelgadom/partidas-api/repository"
	"github.com/ldelgadom/partidas-api/utils"
)

const appVersion = "v1.0.0"

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *mongo.Database) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(ginzap.Ginzap(utils.Logger, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(utils.Logger, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	gameController := controllers.NewGameController(repository.NewGames(db))
	userController := controllers.NewUserController(repository.NewUsers(db))
	objectController := controllers.NewObjectController(repository.NewObjects(db))

	r.GET("/version", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"version": appVersion})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gameGroup := r.Group("/game")
	gameGroup.GET("", gameController.GetGames)
	gameGroup.POST("/create", middleware.AuthRequired(), gameController.CreateGame)
	gameGroup.GET("/user", middleware.AuthRequired(), gameController.GetGamesByUser)
	gameGroup.DELETE("/:id", middleware.AuthRequired(), gameController.DeleteGameByID)

	// Only the credential endpoints are rate limited; deletion is already
	// gated on a valid token.
	userGroup := r.Group("/user")
	userGroup.POST("/create", middleware.RateLimitMiddleware(), userController.CreateUser)
	userGroup.POST("/login", middleware.RateLimitMiddleware(), userController.Login)
	userGroup.DELETE("/:id", middleware.AuthRequired(), userController.DeleteUser)

	objectGroup := r.Group("/object")
	objectGroup.GET("", objectController.GetObjects)
	objectGroup.POST("/create", middleware.AuthRequired(), objectController.CreateObject)
	objectGroup.DELETE("/:id", middleware.AuthRequired(), objectController.DeleteObjectByID)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Text(ctx, http.StatusNotFound, "Ruta no encontrada")
	})

	return r
}
