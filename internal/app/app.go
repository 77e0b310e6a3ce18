package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/db"
	"github.com/nstuweb/campus-backend/internal/logger"
	"github.com/nstuweb/campus-backend/internal/reference"
	"github.com/nstuweb/campus-backend/internal/txn"
)

type App struct {
	Log      *logger.Logger
	Mongo    *db.MongoService
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoService, err := db.NewMongoService(ctx, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init mongo: %w", err)
	}
	if err := mongoService.EnsureIndexes(ctx); err != nil {
		mongoService.Close(ctx)
		log.Sync()
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	refData, err := reference.Load()
	if err != nil {
		mongoService.Close(ctx)
		log.Sync()
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	coordinator := txn.NewCoordinator(mongoService.Client(), log)

	reposet := wireRepos(mongoService.Database(), log)
	serviceset := wireServices(log, cfg, reposet, coordinator)
	handlerset := wireHandlers(log, serviceset, refData)
	router := wireRouter(handlerset)

	return &App{
		Log:      log,
		Mongo:    mongoService,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(a.Cfg.HTTPAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		a.Mongo.Close(ctx)
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
