package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordheist/internal/domain"
	"wordheist/internal/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService(users *testutil.MockUserRepository) *AuthService {
	svc := NewAuthService(users, testutil.NewTestLogger(), testSecret, time.Hour, 3)
	svc.hashCost = bcrypt.MinCost
	svc.now = testutil.Clock(testutil.FixedNow)
	return svc
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		createErr     error
		expectCreate  bool
		expectedError error
	}{
		{
			name:         "valid registration",
			username:     "holmes_221",
			email:        " Holmes@Baker.st ",
			password:     "elementary",
			expectCreate: true,
		},
		{
			name:          "username too short",
			username:      "ab",
			email:         "ab@example.com",
			password:      "secret1",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "username with spaces",
			username:      "john watson",
			email:         "john@example.com",
			password:      "secret1",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "email without at sign",
			username:      "watson",
			email:         "watson.example.com",
			password:      "secret1",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "short password",
			username:      "watson",
			email:         "watson@example.com",
			password:      "12345",
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "duplicate username",
			username:      "watson",
			email:         "watson@example.com",
			password:      "secret1",
			createErr:     domain.ErrConstraintConflict,
			expectCreate:  true,
			expectedError: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			if tt.expectCreate {
				users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.User).ID = 7
					}).
					Return(tt.createErr)
			}

			svc := newAuthService(users)
			u, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, u)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(7), u.ID)
				assert.Equal(t, "holmes@baker.st", u.Email)
				assert.Equal(t, 3, u.HintsRemaining)
				assert.NotEqual(t, tt.password, u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.password)))
			}

			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("elementary"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{ID: 42, Username: "holmes", PasswordHash: string(hash)}
	telegramOnly := &domain.User{ID: 43, Username: "tg_1"}

	tests := []struct {
		name          string
		username      string
		password      string
		mockUser      *domain.User
		mockError     error
		skipLookup    bool
		expectedError error
	}{
		{
			name:     "correct credentials",
			username: "holmes",
			password: "elementary",
			mockUser: stored,
		},
		{
			name:          "wrong password",
			username:      "holmes",
			password:      "obvious",
			mockUser:      stored,
			expectedError: domain.ErrNotAuthenticated,
		},
		{
			name:          "unknown user",
			username:      "moriarty",
			password:      "elementary",
			expectedError: domain.ErrNotAuthenticated,
		},
		{
			name:          "account without password",
			username:      "tg_1",
			password:      "anything",
			mockUser:      telegramOnly,
			expectedError: domain.ErrNotAuthenticated,
		},
		{
			name:          "missing fields",
			username:      "",
			password:      "",
			skipLookup:    true,
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "database error",
			username:      "holmes",
			password:      "elementary",
			mockError:     errors.New("db error"),
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(testutil.MockUserRepository)
			if !tt.skipLookup {
				users.On("GetByUsername", mock.Anything, tt.username).Return(tt.mockUser, tt.mockError)
			}

			svc := newAuthService(users)
			token, u, err := svc.Login(context.Background(), tt.username, tt.password)

			switch {
			case tt.mockError != nil:
				assert.Error(t, err)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored, u)

				userID, err := svc.VerifyToken(token)
				require.NoError(t, err)
				assert.Equal(t, int64(42), userID)
			}

			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	svc := newAuthService(new(testutil.MockUserRepository))

	valid, err := svc.IssueToken(9)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "9",
		ExpiresAt: jwt.NewNumericDate(testutil.FixedNow.Add(-time.Minute)),
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "9"}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "watson"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		expected int64
		wantErr  bool
	}{
		{name: "valid token", token: valid, expected: 9},
		{name: "empty token", token: "", wantErr: true},
		{name: "garbage", token: "not.a.token", wantErr: true},
		{name: "expired", token: expiredToken, wantErr: true},
		{name: "wrong secret", token: foreign, wantErr: true},
		{name: "non-numeric subject", token: badSubject, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := svc.VerifyToken(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, userID)
		})
	}
}

func TestAuthService_EnsureTelegramUser(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		existing := &domain.User{ID: 5, Username: "holmes"}
		users.On("GetByTelegramID", ctx, int64(100)).Return(existing, nil)

		u, err := newAuthService(users).EnsureTelegramUser(ctx, 100, "holmes")

		require.NoError(t, err)
		assert.Equal(t, existing, u)
		users.AssertExpectations(t)
	})

	t.Run("first contact keeps telegram username", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		users.On("GetByTelegramID", ctx, int64(100)).Return(nil, nil)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "holmes" && *u.TelegramID == 100 && u.HintsRemaining == 3
		})).Return(nil)

		u, err := newAuthService(users).EnsureTelegramUser(ctx, 100, "holmes")

		require.NoError(t, err)
		assert.Equal(t, "holmes", u.Username)
		users.AssertExpectations(t)
	})

	t.Run("unusable username falls back", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		users.On("GetByTelegramID", ctx, int64(100)).Return(nil, nil)
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "tg_100"
		})).Return(nil)

		u, err := newAuthService(users).EnsureTelegramUser(ctx, 100, "")

		require.NoError(t, err)
		assert.Equal(t, "tg_100", u.Username)
		users.AssertExpectations(t)
	})

	t.Run("parallel first contact returns winner", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		winner := &domain.User{ID: 8, Username: "holmes"}
		users.On("GetByTelegramID", ctx, int64(100)).Return(nil, nil).Once()
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrConstraintConflict).Once()
		users.On("GetByTelegramID", ctx, int64(100)).Return(winner, nil).Once()

		u, err := newAuthService(users).EnsureTelegramUser(ctx, 100, "holmes")

		require.NoError(t, err)
		assert.Equal(t, winner, u)
		users.AssertExpectations(t)
	})

	t.Run("taken username retries with fallback", func(t *testing.T) {
		users := new(testutil.MockUserRepository)
		users.On("GetByTelegramID", ctx, int64(100)).Return(nil, nil).Twice()
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "holmes"
		})).Return(domain.ErrConstraintConflict).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "tg_100"
		})).Return(nil).Once()

		u, err := newAuthService(users).EnsureTelegramUser(ctx, 100, "holmes")

		require.NoError(t, err)
		assert.Equal(t, "tg_100", u.Username)
		users.AssertExpectations(t)
	})
}

func TestAuthService_GrantPremium(t *testing.T) {
	users := new(testutil.MockUserRepository)
	until := testutil.FixedNow.Add(30 * 24 * time.Hour)
	users.On("SetPremium", mock.Anything, int64(3), until).Return(nil)

	got, err := newAuthService(users).GrantPremium(context.Background(), 3, 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, until, got)
	users.AssertExpectations(t)
}
