package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// premiumPeriod is how long one premium grant lasts
const premiumPeriod = 30 * 24 * time.Hour

// Pinger reports whether storage is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers serves the JSON API
type Handlers struct {
	auth        *service.AuthService
	puzzles     *service.PuzzleService
	game        *service.GameService
	scores      *service.ScoreService
	leaderboard *service.LeaderboardService
	stats       *service.StatsService
	db          Pinger
	logger      *zap.Logger
}

// NewHandlers creates the API handlers
func NewHandlers(
	auth *service.AuthService,
	puzzles *service.PuzzleService,
	game *service.GameService,
	scores *service.ScoreService,
	leaderboard *service.LeaderboardService,
	stats *service.StatsService,
	db Pinger,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		auth:        auth,
		puzzles:     puzzles,
		game:        game,
		scores:      scores,
		leaderboard: leaderboard,
		stats:       stats,
		db:          db,
		logger:      logger,
	}
}

type userPayload struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email,omitempty"`
	TotalScore     int        `json:"total_score"`
	Streak         int        `json:"streak"`
	HintsRemaining int        `json:"hints_remaining"`
	Premium        bool       `json:"premium"`
	PremiumUntil   *time.Time `json:"premium_until,omitempty"`
}

func newUserPayload(u *domain.User) userPayload {
	return userPayload{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TotalScore:     u.TotalScore,
		Streak:         u.Streak,
		HintsRemaining: u.HintsRemaining,
		Premium:        u.Premium,
		PremiumUntil:   u.PremiumUntil,
	}
}

// bindJSON decodes the body, reporting malformed input as ErrInvalidInput
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

// Home is the service banner
func (h *Handlers) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Word Heist API",
		"status":    "running",
		"endpoints": []string{"/api/health", "/api/daily-puzzle", "/api/leaderboard"},
	})
}

// Health reports liveness and database reachability
func (h *Handlers) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.logger.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "database unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Word Heist API is running",
	})
}

// DailyPuzzle returns today's case without its mystery word
func (h *Handlers) DailyPuzzle(c *gin.Context) {
	p, err := h.puzzles.Today(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p.View()})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and signs the caller in
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.IssueToken(u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": newUserPayload(u)})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": newUserPayload(u)})
}

type wordRequest struct {
	Word string `json:"word"`
}

// ValidateWord classifies a guess against today's case
func (h *Handlers) ValidateWord(c *gin.Context) {
	var req wordRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.game.SubmitWord(c.Request.Context(), c.GetInt64(userIDKey), req.Word)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Hint reveals the next unfound word
func (h *Handlers) Hint(c *gin.Context) {
	result, err := h.game.Hint(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Progress returns the caller's state on today's case
func (h *Handlers) Progress(c *gin.Context) {
	view, err := h.game.Progress(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type submitScoreRequest struct {
	PuzzleID   int64    `json:"puzzle_id"`
	Score      int      `json:"score"`
	TimeTaken  int      `json:"time_taken"`
	WordsFound []string `json:"words_found"`
}

// SubmitScore files a session result. A missing puzzle_id means today's case.
func (h *Handlers) SubmitScore(c *gin.Context) {
	var req submitScoreRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if req.PuzzleID == 0 {
		p, err := h.puzzles.Today(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		req.PuzzleID = p.ID
	}

	result, err := h.scores.Submit(ctx, domain.ScoreSubmission{
		UserID:     c.GetInt64(userIDKey),
		PuzzleID:   req.PuzzleID,
		Score:      req.Score,
		TimeTaken:  req.TimeTaken,
		WordsFound: req.WordsFound,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// Leaderboard ranks scores. Daily without puzzle_id means today's case.
func (h *Handlers) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()
	period := domain.ParsePeriod(c.Query("period"))

	var puzzleID *int64
	if raw := c.Query("puzzle_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondError(c, fmt.Errorf("%w: puzzle_id must be a positive integer", domain.ErrInvalidInput))
			return
		}
		puzzleID = &id
	} else if period == domain.PeriodDaily {
		p, err := h.puzzles.Today(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		puzzleID = &p.ID
	}

	entries, err := h.leaderboard.Leaderboard(ctx, period, puzzleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "entries": entries})
}

// UserStats returns the caller's record
func (h *Handlers) UserStats(c *gin.Context) {
	stats, err := h.stats.UserStats(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Premium grants thirty days of unlimited hints
func (h *Handlers) Premium(c *gin.Context) {
	until, err := h.auth.GrantPremium(c.Request.Context(), c.GetInt64(userIDKey), premiumPeriod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"premium": true, "premium_until": until})
}
