package routes

import (
	"uplift-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the account endpoints.
func AuthRoutes(r *gin.Engine, auth *controllers.AuthController, authRequired gin.HandlerFunc) {
	group := r.Group("/api/auth")
	{
		group.POST("/register", auth.Register)
		group.POST("/login", auth.Login)
		group.GET("/me", authRequired, auth.Me)
	}
}
