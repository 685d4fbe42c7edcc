package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unbequem/site-backend/internal/config"
	"github.com/unbequem/site-backend/internal/models"
)

// Server represents the API server
type Server struct {
	router *gin.Engine
	client *YouTubeClient
	yt     *YouTubeAPI
	cfg    *config.Config
}

// NewServer creates a new API server
func NewServer(cfg *config.Config) (*Server, error) {
	router := gin.Default()

	// Configure CORS: the site frontend may be served from anywhere
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	server := &Server{
		router: router,
		client: NewYouTubeClient(cfg.YouTubeAPIKey),
		cfg:    cfg,
	}

	// The official client refuses to start without credentials, so the
	// detail endpoint is only wired up when a key is configured.
	if cfg.APIKeyConfigured() {
		yt, err := NewYouTubeAPI(cfg.YouTubeAPIKey)
		if err != nil {
			return nil, err
		}
		server.yt = yt
	}

	server.setupRoutes()

	return server, nil
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/", s.getRoot)
	s.router.GET("/api/hello", s.getHello)
	s.router.GET("/api/youtube/channel_stats", s.getChannelStats)
	s.router.GET("/api/youtube/channel/:id", s.getChannelByID)
	s.router.GET("/test", s.testDatabase)
}

// getRoot lists the services this backend exposes
func (s *Server) getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Backend running",
		"services": []string{"/api/youtube/channel_stats?handle=@handle_or_id"},
	})
}

// getHello handles the health-check endpoint
func (s *Server) getHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from the backend API!",
	})
}

// getChannelStats handles the channel statistics lookup
func (s *Server) getChannelStats(c *gin.Context) {
	req := models.LookupRequest{
		Handle: c.Query("handle"),
		ID:     c.Query("id"),
	}

	stats, err := s.client.ResolveChannelStats(c.Request.Context(), req)
	if err != nil {
		s.handleLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getChannelByID handles the full channel detail lookup
func (s *Server) getChannelByID(c *gin.Context) {
	channelID := c.Param("id")

	if s.yt == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  models.StatusUnconfigured,
			"message": "YOUTUBE_API_KEY not set on server",
		})
		return
	}

	channel, err := s.yt.GetChannelByID(channelID)
	if err != nil {
		s.handleLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, channel)
}

// handleLookupError maps resolver errors onto HTTP statuses
func (s *Server) handleLookupError(c *gin.Context, err error) {
	var upstream *models.UpstreamError

	switch {
	case errors.Is(err, models.ErrMissingLookup):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &upstream):
		c.JSON(upstream.StatusCode, gin.H{"error": upstream.Detail})
	case errors.Is(err, models.ErrChannelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("channel lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// testDatabase probes the optional SQLite Cloud backend and reports its
// state without ever failing the request itself.
func (s *Server) testDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"tables":            []string{},
	}

	if s.cfg.DatabaseURL != "" {
		response["database_url"] = "✅ Set"
	}
	if s.cfg.DatabaseName != "" {
		response["database_name"] = "✅ Set"
	}

	if s.cfg.DatabaseURL == "" {
		c.JSON(http.StatusOK, response)
		return
	}

	db, err := models.NewDatabase(s.cfg.DatabaseURL, s.cfg.DatabaseName)
	if err != nil {
		response["database"] = fmt.Sprintf("❌ Error: %s", truncate(err.Error(), 50))
		c.JSON(http.StatusOK, response)
		return
	}
	defer db.Close()

	response["database"] = "✅ Available"
	response["connection_status"] = "Connected"

	tables, err := db.ListTables(10)
	if err != nil {
		response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
	} else {
		response["database"] = "✅ Connected & Working"
		response["tables"] = tables
	}

	c.JSON(http.StatusOK, response)
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
