package router

import (
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/application"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/container"
	handlers "github.com/PRASANNAPATIL12/2.31weddingcard/internal/interface/http"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/router/modules"
)

// InitModules builds services from the container singletons and registers
// every feature module. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	authSvc := application.NewAuthService(container.GetUserStore(), container.GetSessions(), logger)
	weddingSvc := application.NewWeddingService(container.GetWeddingStore(), authSvc, logger)

	r.Add(modules.NewStatus(handlers.NewStatusHandler(container.GetDegraded())))
	r.Add(modules.NewAuth(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewWedding(handlers.NewWeddingHandler(weddingSvc, logger)))
}
