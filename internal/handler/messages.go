package handler

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"wordheist/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// UserIDKey is the context key the identity middleware stores the account id under
const UserIDKey = "user_id"

const welcomeText = "🕵️ Welcome to Word Heist!\n\n" +
	"Every day a new case lands on your desk: six letters and a hidden mystery word.\n" +
	"Send words made from the letters to collect evidence. Find the mystery word to close the case.\n\n" +
	"/puzzle shows today's case."

// userIDFrom returns the account id set by the identity middleware
func userIDFrom(c tele.Context) int64 {
	id, _ := c.Get(UserIDKey).(int64)
	return id
}

// isUserError reports errors caused by the player rather than the system
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrHintsExhausted) ||
		errors.Is(err, domain.ErrNoWordsRemaining)
}

// errorMessage maps the error taxonomy onto chat replies
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "That doesn't look like a word. Send letters only."
	case errors.Is(err, domain.ErrHintsExhausted):
		return "No hints left. Go premium for unlimited hints."
	case errors.Is(err, domain.ErrNoWordsRemaining):
		return "You've already found every word in this case!"
	case errors.Is(err, domain.ErrNotFound):
		return "Case not found."
	case domain.IsRetryable(err):
		return "The archive is busy. Try again in a moment."
	default:
		return "Something went wrong. Please try again later."
	}
}

func formatCase(p *domain.Puzzle, view *domain.ProgressView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗂 %s\n", p.CaseTitle)
	fmt.Fprintf(&b, "Theme: %s · Difficulty: %s\n\n", p.Theme, p.Difficulty)
	fmt.Fprintf(&b, "Letters: %s\n", p.LetterString())
	fmt.Fprintf(&b, "Mystery word: %s\n\n", strings.Repeat("_ ", len(p.MysteryWord)))
	fmt.Fprintf(&b, "Evidence: %d/%d · Score: %d\n", len(view.FoundWords), view.TotalWords, view.Score)
	if len(view.FoundWords) > 0 {
		fmt.Fprintf(&b, "Found: %s\n", strings.Join(view.FoundWords, ", "))
	}
	if leads := openLeads(view); len(leads) > 0 {
		fmt.Fprintf(&b, "Leads: %s\n", strings.Join(leads, ", "))
	}
	if view.Completed {
		b.WriteString("\n✅ Case closed!")
	}
	return b.String()
}

// openLeads returns hinted words the player has not typed in yet
func openLeads(view *domain.ProgressView) []string {
	var leads []string
	for _, w := range view.RevealedWords {
		if !slices.Contains(view.FoundWords, w) {
			leads = append(leads, w)
		}
	}
	return leads
}

func formatWordResult(r *domain.WordResult) string {
	switch r.Classification {
	case domain.ClassMystery:
		return fmt.Sprintf("🎉 %s is the mystery word! +%d points. Case closed!\nScore: %d", r.Word, r.Points, r.Score)
	case domain.ClassValid:
		return fmt.Sprintf("✅ %s: +%d points\nScore: %d", r.Word, r.Points, r.Score)
	case domain.ClassDuplicate:
		return fmt.Sprintf("🔁 %s is already in your evidence.", r.Word)
	default:
		return fmt.Sprintf("❌ %s is not part of this case.", r.Word)
	}
}

func formatHint(r *domain.HintResult) string {
	remaining := fmt.Sprintf("%d hints left", r.HintsRemaining)
	if r.Premium {
		remaining = "premium: unlimited hints"
	}
	return fmt.Sprintf("🔍 Try: %s\n(%s)", r.Word, remaining)
}

func formatSubmit(r *domain.SubmitResult, view *domain.ProgressView) string {
	var b strings.Builder
	switch {
	case r.Created:
		b.WriteString("📨 Case filed!\n")
	case r.Improved:
		b.WriteString("📨 New personal best filed!\n")
	default:
		b.WriteString("📨 Your earlier report scored higher; keeping it.\n")
	}
	fmt.Fprintf(&b, "Score: %d · Best: %d\n", view.Score, r.BestScore)
	fmt.Fprintf(&b, "🔥 Streak: %d", r.Streak)
	return b.String()
}

func formatLeaderboard(title string, entries []domain.LeaderboardEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 %s\n\n", title)
	if len(entries) == 0 {
		b.WriteString("No reports filed yet. Be the first!")
		return b.String()
	}
	for i, e := range entries {
		if i == 10 {
			break
		}
		fmt.Fprintf(&b, "%d. %s: %d (%ds)\n", e.Rank, e.Username, e.Score, e.TimeTaken)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatStats(s *domain.UserStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\n\n", s.Username)
	fmt.Fprintf(&b, "Cases filed: %d (closed %d)\n", s.GamesPlayed, s.Completed)
	fmt.Fprintf(&b, "Total score: %d\n", s.TotalScore)
	fmt.Fprintf(&b, "Average: %.1f · Best: %d\n", s.AverageScore, s.BestScore)
	fmt.Fprintf(&b, "🔥 Streak: %d\n", s.Streak)
	if s.Premium {
		b.WriteString("Hints: unlimited (premium)")
	} else {
		fmt.Fprintf(&b, "Hints left: %d", s.HintsRemaining)
	}
	return b.String()
}
