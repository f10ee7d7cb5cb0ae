package routes

import (
	"net/http"
	"os"

	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	AllowedOrigins []string
	// StaticDir holds the browser front page; skipped when it does not exist.
	StaticDir string
}

func NewRouter(h *controller.Handlers, log *logrus.Logger, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api := router.Group("/api")
	{
		UserRoutes(api, h)
		ExerciseRoutes(api, h)
	}

	router.GET("/healthz", h.Health())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			router.NoRoute(frontend(cfg.StaticDir))
		}
	}

	return router
}

// frontend serves files from dir at the site root for any path no route
// claims. Directory listings are disabled; "/" resolves to index.html.
func frontend(dir string) gin.HandlerFunc {
	files := http.FileServer(gin.Dir(dir, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
