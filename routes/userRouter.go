package routes

import (
	controller "golang-exercisetracker/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.RouterGroup, h *controller.Handlers) {
	incomingRoutes.POST("/users", h.CreateUser())
	incomingRoutes.GET("/users", h.GetUsers())
}
