package handler

import (
	"sync"

	"wordheist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	puzzles     *service.PuzzleService
	game        *service.GameService
	scores      *service.ScoreService
	leaderboard *service.LeaderboardService
	stats       *service.StatsService
	logger      *zap.Logger

	// Per-user locks so double taps on a button are handled one at a time
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	puzzles *service.PuzzleService,
	game *service.GameService,
	scores *service.ScoreService,
	leaderboard *service.LeaderboardService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		puzzles:       puzzles,
		game:          game,
		scores:        scores,
		leaderboard:   leaderboard,
		stats:         stats,
		logger:        logger,
		callbackLocks: make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/puzzle", h.handlePuzzle)

	// Text messages are guesses
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnHint, h.handleHint)
	h.bot.Handle(&btnSubmit, h.handleSubmit)
	h.bot.Handle(&btnLeaderboard, h.handleLeaderboard)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnCaseFile, h.handleCaseFile)

	// Generic callback handler for buttons whose Unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// lockUser serialises work for one user; call the returned func to release
func (h *Handler) lockUser(userID int64) func() {
	h.callbackMux.Lock()
	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	h.callbackMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Inline keyboard buttons
var (
	btnHint = tele.Btn{
		Unique: "hint",
		Text:   "🔍 Hint",
	}
	btnSubmit = tele.Btn{
		Unique: "submit",
		Text:   "📨 Submit case",
	}
	btnLeaderboard = tele.Btn{
		Unique: "leaderboard",
		Text:   "🏆 Leaderboard",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 My stats",
	}
	btnCaseFile = tele.Btn{
		Unique: "case_file",
		Text:   "🗂 Case file",
	}
)

// caseMarkup returns the in-game keyboard
func caseMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnHint, btnSubmit),
		menu.Row(btnLeaderboard, btnStats),
		menu.Row(btnCaseFile),
	)
	return menu
}
