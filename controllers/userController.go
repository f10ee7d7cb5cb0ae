package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type userCreated struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

func (h *Handlers) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.requestContext(c)
		defer cancel()

		fields, err := requestFields(c)
		if err != nil {
			respondError(c, err)
			return
		}

		user, err := h.users.CreateUser(ctx, fields["username"])
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, userCreated{Username: user.Username, ID: user.ID.Hex()})
	}
}

func (h *Handlers) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.requestContext(c)
		defer cancel()

		users, err := h.users.ListUsers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
