package httpapi

import (
	"fmt"

	"wordheist/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// RouterConfig holds what the router wires together
type RouterConfig struct {
	Handlers    *Handlers
	Tokens      TokenVerifier
	CORSOrigins []string
	// ServiceName enables otelgin spans when non-empty
	ServiceName string
	Logger      *zap.Logger
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(RequestID())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(CORS(cfg.CORSOrigins))

	h := cfg.Handlers
	r.GET("/", h.Home)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/daily-puzzle", h.DailyPuzzle)
		api.GET("/leaderboard", h.Leaderboard)
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
	}

	protected := api.Group("/")
	protected.Use(RequireAuth(cfg.Tokens))
	{
		protected.POST("/validate-word", h.ValidateWord)
		protected.POST("/hint", h.Hint)
		protected.GET("/progress", h.Progress)
		protected.POST("/submit-score", h.SubmitScore)
		protected.GET("/user/stats", h.UserStats)
		protected.POST("/premium", h.Premium)
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, fmt.Errorf("%w: endpoint %s %s", domain.ErrNotFound, c.Request.Method, c.Request.URL.Path))
	})

	return r
}
