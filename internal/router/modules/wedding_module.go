package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/PRASANNAPATIL12/2.31weddingcard/internal/interface/http"
)

// WeddingModule wires the card CRUD and the three public lookups.
// Session-scoped: POST/PUT/GET /api/wedding
// Public: GET /api/wedding/public/{:id | custom/:slug | user/:user_id}
type WeddingModule struct {
	Handler *handlers.WeddingHandler
}

func NewWedding(h *handlers.WeddingHandler) *WeddingModule {
	return &WeddingModule{Handler: h}
}

func (m *WeddingModule) Register(rg *gin.RouterGroup) {
	rg.POST("/wedding", m.Handler.Create)
	rg.PUT("/wedding", m.Handler.Update)
	rg.GET("/wedding", m.Handler.GetPrivate)

	pub := rg.Group("/wedding/public")
	{
		pub.GET("/custom/:custom_url", m.Handler.GetPublicByCustomURL)
		pub.GET("/user/:user_id", m.Handler.GetPublicByUserID)
		pub.GET("/:wedding_id", m.Handler.GetPublicByID)
	}
}
