package users

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the authenticated user endpoints. The caller is
// expected to attach the JWT middleware to the parent group.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	usersGroup := router.Group("/users")
	{
		usersGroup.POST("/profile/update", handler.UpdateProfile)
		usersGroup.GET("/me", handler.GetMe)
	}
}
