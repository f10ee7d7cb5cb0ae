// Package controllers adapts the exercise tracker services to gin handlers.
// Every outcome, including failures, is answered with HTTP 200; failures carry
// an {"error": message} body.
package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"golang-exercisetracker/middleware"
	"golang-exercisetracker/observability"
	"golang-exercisetracker/services"
)

const maxMultipartMemory = 32 << 20

type Handlers struct {
	users     *services.UserService
	exercises *services.ExerciseService
	logs      *services.LogService
	ping      func(context.Context) error
	timeout   time.Duration
}

// NewHandlers wires the services into handlers. Each handler bounds its store
// calls by timeout; ping backs the health check and may be nil.
func NewHandlers(users *services.UserService, exercises *services.ExerciseService, logs *services.LogService, ping func(context.Context) error, timeout time.Duration) *Handlers {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handlers{
		users:     users,
		exercises: exercises,
		logs:      logs,
		ping:      ping,
		timeout:   timeout,
	}
}

func (h *Handlers) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handlers) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.ping != nil {
			ctx, cancel := h.requestContext(c)
			defer cancel()
			if err := h.ping(ctx); err != nil {
				respondError(c, &services.PersistenceError{Op: "ping", Err: err})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// respondError renders err in a 200 response, the contract clients rely on.
func respondError(c *gin.Context, err error) {
	var perr *services.PersistenceError
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		observability.RecordDomainError("not_found")
	case errors.As(err, &perr):
		observability.RecordDomainError("persistence")
		middleware.Logger(c).WithError(perr.Err).WithField("op", perr.Op).Warn("store operation failed")
	default:
		observability.RecordDomainError("request")
		middleware.Logger(c).WithError(err).Info("request rejected")
	}
	c.JSON(http.StatusOK, gin.H{"error": err.Error()})
}

// requestFields reads a JSON, urlencoded or multipart body into field values.
// JSON numbers and booleans are turned into their text form; nulls are
// treated as absent.
func requestFields(c *gin.Context) (map[string]string, error) {
	fields := map[string]string{}

	if c.ContentType() == binding.MIMEJSON {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
		for key, value := range raw {
			switch v := value.(type) {
			case nil:
			case string:
				fields[key] = v
			case float64:
				fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				fields[key] = "0"
				if v {
					fields[key] = "1"
				}
			default:
				fields[key] = fmt.Sprint(v)
			}
		}
		return fields, nil
	}

	if strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}
