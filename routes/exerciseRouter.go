package routes

import (
	controller "golang-exercisetracker/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, h *controller.Handlers) {
	incomingRoutes.POST("/users/:_id/exercises", h.CreateExercise())
	incomingRoutes.GET("/users/:_id/logs", h.GetLogs())
}
