package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-user-token-api/internal/interface/http"
	"github.com/oksasatya/go-user-token-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes
// Public: POST /user/create, POST /user/token
// Protected: GET /user/me
type UserModule struct {
	Handler  *handlers.UserHandler
	Verifier middleware.TokenVerifier
}

func NewUserModule(h *handlers.UserHandler, v middleware.TokenVerifier) *UserModule {
	return &UserModule{Handler: h, Verifier: v}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.POST("/create", m.Handler.Create)
	user.POST("/token", m.Handler.Token)
	user.GET("/me", middleware.Auth(m.Verifier), m.Handler.Me)
}
