package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PRASANNAPATIL12/2.31weddingcard/config"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/container"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/infrastructure/fallback"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/infrastructure/jsonfile"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/infrastructure/mongodb"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/interface/middleware"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/router"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/session"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/helpers"
	"github.com/PRASANNAPATIL12/2.31weddingcard/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.WithError(err).Fatal("failed to create data dir")
	}

	// Probe the document database once. Failure is not fatal: the service
	// runs degraded on the file store for the lifetime of the process.
	var (
		primaryUsers    repository.Store[entity.User]
		primaryWeddings repository.Store[entity.WeddingProfile]
	)
	client, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.MongoTimeout)
	if err != nil {
		logger.WithError(err).Warn("mongodb unreachable, running degraded on file store")
	} else {
		db := client.Database(cfg.MongoDB)
		primaryUsers = mongodb.NewStore[entity.User](db, "users")
		primaryWeddings = mongodb.NewStore[entity.WeddingProfile](db, "weddings")
		defer func() { _ = client.Disconnect(context.Background()) }()
	}

	users := fallback.New(primaryUsers, jsonfile.NewStore[entity.User](cfg.UsersFile(), logger), logger)
	weddings := fallback.New(primaryWeddings, jsonfile.NewStore[entity.WeddingProfile](cfg.WeddingsFile(), logger), logger)

	sessions := session.NewRegistry()
	defer sessions.ClearAll()

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetUserStore(users)
	container.SetWeddingStore(weddings)
	container.SetSessions(sessions)
	container.SetDegraded(users.Degraded)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown; sessions die with the process.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
