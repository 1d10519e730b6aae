package ui

import (
	"log"

	"contaudit/app"
	"contaudit/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server represents the web server for the audit file service
type Server struct {
	router  *gin.Engine
	service *app.AuditService
	config  *config.Config
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.New(),
		service: app.NewAuditService(),
		config:  cfg,
	}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures CORS and request identification
func (s *Server) setupMiddleware() {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}
	if len(s.config.CORS.AllowedOrigins) == 1 && s.config.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.config.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	s.router.Use(cors.New(corsConfig))
	s.router.Use(RequestID())
}

// setupRoutes registers the service endpoints
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.POST("/upload", s.handleUpload)
	s.router.POST("/processar", s.handleProcess)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	log.Printf("[Server] listening on port %s", s.config.Server.Port)
	return s.router.Run(":" + s.config.Server.Port)
}
