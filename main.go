package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ldelgadom/partidas-api/config"
	"github.com/ldelgadom/partidas-api/routes"
	"github.com/ldelgadom/partidas-api/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	client, db, err := config.InitDatabase(cfg)
	if err != nil {
		utils.Sugar.Fatalf("mongodb connection failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			utils.Sugar.Errorf("mongodb disconnect failed: %v", err)
		}
	}()
	utils.Sugar.Infof("connected to mongodb database %q", cfg.MongoDatabase)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	// A drained server reports http.ErrServerClosed; only anything else is a
	// failure. Returning normally lets the deferred disconnect run.
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Sugar.Errorf("server stopped with error: %v", err)
		return
	}
	utils.Sugar.Info("HTTP server exited cleanly")
}
