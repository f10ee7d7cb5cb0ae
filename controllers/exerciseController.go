package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golang-exercisetracker/services"
)

func (h *Handlers) CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.requestContext(c)
		defer cancel()

		fields, err := requestFields(c)
		if err != nil {
			respondError(c, err)
			return
		}

		duration, durationSet := fields["duration"]
		logged, err := h.exercises.LogExercise(ctx, services.ExerciseInput{
			UserID:      c.Param("_id"),
			Description: fields["description"],
			Duration:    duration,
			DurationSet: durationSet,
			Date:        fields["date"],
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, logged)
	}
}

func (h *Handlers) GetLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.requestContext(c)
		defer cancel()

		result, err := h.logs.GetLogs(ctx, c.Param("_id"), services.LogQuery{
			From:  c.Query("from"),
			To:    c.Query("to"),
			Limit: c.Query("limit"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
