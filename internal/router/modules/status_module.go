package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/PRASANNAPATIL12/2.31weddingcard/internal/interface/http"
)

// StatusModule wires the liveness endpoints.
// Routes: GET /api/, GET /api/test
type StatusModule struct {
	Handler *handlers.StatusHandler
}

func NewStatus(h *handlers.StatusHandler) *StatusModule {
	return &StatusModule{Handler: h}
}

func (m *StatusModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/test", m.Handler.Test)
}
