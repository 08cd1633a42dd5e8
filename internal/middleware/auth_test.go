package middleware

import (
	"context"
	"errors"
	"testing"

	"wordheist/internal/domain"
	"wordheist/internal/handler"
	"wordheist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) EnsureTelegramUser(ctx context.Context, telegramID int64, username string) (*domain.User, error) {
	args := m.Called(telegramID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// fakeContext implements only what the middleware touches
type fakeContext struct {
	tele.Context
	sender *tele.User
	store  map[string]interface{}
	sent   []interface{}
}

func newFakeContext(sender *tele.User) *fakeContext {
	return &fakeContext{sender: sender, store: map[string]interface{}{}}
}

func (f *fakeContext) Sender() *tele.User { return f.sender }
func (f *fakeContext) Callback() *tele.Callback { return nil }
func (f *fakeContext) Get(key string) interface{} { return f.store[key] }
func (f *fakeContext) Set(key string, value interface{}) { f.store[key] = value }
func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		mockUser     *domain.User
		mockError    error
		expectNext   bool
		expectedUser int64
	}{
		{
			name:         "known sender",
			mockUser:     &domain.User{ID: 42},
			expectNext:   true,
			expectedUser: 42,
		},
		{
			name:      "lookup fails",
			mockError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUsers)
			users.On("EnsureTelegramUser", int64(100), "holmes").Return(tt.mockUser, tt.mockError)

			called := false
			next := func(c tele.Context) error {
				called = true
				return nil
			}

			c := newFakeContext(&tele.User{ID: 100, Username: "holmes"})
			err := AuthMiddleware(users, testutil.NewTestLogger())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			if tt.expectNext {
				assert.Equal(t, tt.expectedUser, c.Get(handler.UserIDKey))
			} else {
				assert.Len(t, c.sent, 1)
			}
			users.AssertExpectations(t)
		})
	}
}
