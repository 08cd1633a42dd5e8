package testutil

import (
	"context"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AddScore(ctx context.Context, userID int64, points int) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *MockUserRepository) SetHintsRemaining(ctx context.Context, userID int64, hints int) error {
	args := m.Called(ctx, userID, hints)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStreak(ctx context.Context, userID int64, streak int, lastPlayed time.Time) error {
	args := m.Called(ctx, userID, streak, lastPlayed)
	return args.Error(0)
}

func (m *MockUserRepository) SetPremium(ctx context.Context, userID int64, until time.Time) error {
	args := m.Called(ctx, userID, until)
	return args.Error(0)
}

// MockPuzzleRepository is a mock for PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Puzzle, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Puzzle), args.Error(1)
}

func (m *MockPuzzleRepository) GetByID(ctx context.Context, puzzleID int64) (*domain.Puzzle, error) {
	args := m.Called(ctx, puzzleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Puzzle), args.Error(1)
}

func (m *MockPuzzleRepository) Insert(ctx context.Context, p *domain.Puzzle) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error) {
	args := m.Called(ctx, userID, puzzleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Progress, error) {
	args := m.Called(ctx, userID, puzzleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) Create(ctx context.Context, p *domain.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressRepository) Update(ctx context.Context, p *domain.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockScoreRepository is a mock for ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) GetForUpdate(ctx context.Context, userID, puzzleID int64) (*domain.Score, error) {
	args := m.Called(ctx, userID, puzzleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Score), args.Error(1)
}

func (m *MockScoreRepository) Create(ctx context.Context, s *domain.Score) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScoreRepository) Update(ctx context.Context, s *domain.Score) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScoreRepository) Aggregate(ctx context.Context, userID int64) (domain.ScoreAggregate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.ScoreAggregate), args.Error(1)
}

func (m *MockScoreRepository) Leaderboard(ctx context.Context, q domain.LeaderboardQuery) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// Mocks bundles one mock per repository
type Mocks struct {
	Users    *MockUserRepository
	Puzzles  *MockPuzzleRepository
	Progress *MockProgressRepository
	Scores   *MockScoreRepository
}

// NewMocks creates a fresh set of repository mocks
func NewMocks() *Mocks {
	return &Mocks{
		Users:    new(MockUserRepository),
		Puzzles:  new(MockPuzzleRepository),
		Progress: new(MockProgressRepository),
		Scores:   new(MockScoreRepository),
	}
}

// Repos exposes the mocks as repository.Repos
func (m *Mocks) Repos() repository.Repos {
	return repository.Repos{
		Users:    m.Users,
		Puzzles:  m.Puzzles,
		Progress: m.Progress,
		Scores:   m.Scores,
	}
}

// AssertExpectations checks every mock in the set
func (m *Mocks) AssertExpectations(t mock.TestingT) {
	m.Users.AssertExpectations(t)
	m.Puzzles.AssertExpectations(t)
	m.Progress.AssertExpectations(t)
	m.Scores.AssertExpectations(t)
}

// MockTxRunner runs fn directly against Repos and counts attempts
type MockTxRunner struct {
	Repos repository.Repos
	Calls int
}

func (m *MockTxRunner) RunInTx(ctx context.Context, fn func(r repository.Repos) error) error {
	m.Calls++
	return fn(m.Repos)
}
