package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the public auth endpoints
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.HandleRegister)
		authGroup.POST("/login", handler.HandleLogin)
		authGroup.GET("/logout", handler.HandleLogout)
	}
}
