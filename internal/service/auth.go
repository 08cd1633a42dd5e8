package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
	maxEmailLength    = 120
)

// AuthService handles accounts and caller identity
type AuthService struct {
	users     repository.UserRepository
	logger    *zap.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	freeHints int
	hashCost  int
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, logger *zap.Logger, jwtSecret string, tokenTTL time.Duration, freeHints int) *AuthService {
	return &AuthService{
		users:     users,
		logger:    logger,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		freeHints: freeHints,
		hashCost:  bcrypt.DefaultCost,
		now:       time.Now,
	}
}

// Register creates a password account
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-32 letters, digits or underscores", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") || len(email) > maxEmailLength {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must be %d-%d characters", domain.ErrInvalidInput, minPasswordLength, maxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hash),
		HintsRemaining: s.freeHints,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConstraintConflict) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login checks credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil || u.PasswordHash == "" {
		return "", nil, fmt.Errorf("%w: invalid username or password", domain.ErrNotAuthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid username or password", domain.ErrNotAuthenticated)
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// IssueToken signs an HS256 token whose subject is the user id
func (s *AuthService) IssueToken(userID int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// VerifyToken returns the user id carried by a valid token
func (s *AuthService) VerifyToken(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, fmt.Errorf("%w: missing token", domain.ErrNotAuthenticated)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: invalid or expired token", domain.ErrNotAuthenticated)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: invalid token subject", domain.ErrNotAuthenticated)
	}
	return userID, nil
}

// EnsureTelegramUser returns the account linked to a Telegram id, creating it on first contact
func (s *AuthService) EnsureTelegramUser(ctx context.Context, telegramID int64, telegramUsername string) (*domain.User, error) {
	u, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	fallback := fmt.Sprintf("tg_%d", telegramID)
	name := telegramUsername
	if !usernamePattern.MatchString(name) {
		name = fallback
	}

	u = &domain.User{
		Username:       name,
		TelegramID:     &telegramID,
		HintsRemaining: s.freeHints,
	}
	err = s.users.Create(ctx, u)
	if errors.Is(err, domain.ErrConstraintConflict) {
		// either a parallel first contact or the username belongs to someone else
		existing, getErr := s.users.GetByTelegramID(ctx, telegramID)
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil {
			return existing, nil
		}
		u.Username = fallback
		err = s.users.Create(ctx, u)
	}
	if err != nil {
		return nil, fmt.Errorf("create telegram user: %w", err)
	}

	s.logger.Info("Telegram user created",
		zap.Int64("user_id", u.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", u.Username),
	)
	return u, nil
}

// GrantPremium unlocks unlimited hints for the given duration
func (s *AuthService) GrantPremium(ctx context.Context, userID int64, d time.Duration) (time.Time, error) {
	until := s.now().Add(d)
	if err := s.users.SetPremium(ctx, userID, until); err != nil {
		return time.Time{}, fmt.Errorf("grant premium: %w", err)
	}
	s.logger.Info("Premium granted", zap.Int64("user_id", userID), zap.Time("until", until))
	return until, nil
}
