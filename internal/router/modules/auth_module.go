package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/PRASANNAPATIL12/2.31weddingcard/internal/interface/http"
)

// AuthModule wires registration and login plus the session-scoped profile
// endpoint.
// Routes: POST /api/auth/register, POST /api/auth/login, GET /api/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuth(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", m.Handler.Register)
		auth.POST("/login", m.Handler.Login)
	}
	rg.GET("/profile", m.Handler.Profile)
}
