package auth

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type authFixture struct {
	userRepo       *mocks.UserRepository
	sessionService *mocks.SessionService
	limiter        *mocks.AttemptLimiter
}

func newAuthFixture() *authFixture {
	return &authFixture{
		userRepo:       new(mocks.UserRepository),
		sessionService: new(mocks.SessionService),
		limiter:        new(mocks.AttemptLimiter),
	}
}

func (f *authFixture) usecase() *authUsecase {
	return NewAuthUsecase(f.userRepo, f.sessionService, f.limiter, testSecret, zap.NewNop()).(*authUsecase)
}

func newStoredUser(t *testing.T, password string, active bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "front@clinic.test",
		FullName: "Front Desk",
		Password: hash,
		Role:     constvars.RoleReceptionist,
		Active:   active,
	}
}

func TestLogin(t *testing.T) {
	request := &requests.Login{Email: "Front@Clinic.test", Password: "Secret#Pass1"}

	t.Run("Valid credentials return a signed session token", func(t *testing.T) {
		f := newAuthFixture()
		user := newStoredUser(t, "Secret#Pass1", true)
		expiresAt := time.Now().Add(time.Hour)
		f.limiter.On("Blocked", mock.Anything, "front@clinic.test").Return(false, nil)
		f.userRepo.On("FindByEmail", mock.Anything, "front@clinic.test").Return(user, nil)
		f.limiter.On("Reset", mock.Anything, "front@clinic.test").Return(nil)
		f.sessionService.On("CreateSession", mock.Anything, user).Return(&models.Session{
			SessionID: "sess-1",
			UserID:    user.ID.Hex(),
			Role:      user.Role,
			ExpiresAt: expiresAt,
		}, nil)

		response, err := f.usecase().Login(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), response.User.ID)

		sessionID, err := utils.ParseJWT(response.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "sess-1", sessionID)
		f.limiter.AssertExpectations(t)
	})

	t.Run("Wrong password is counted", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Blocked", mock.Anything, "front@clinic.test").Return(false, nil)
		f.userRepo.On("FindByEmail", mock.Anything, "front@clinic.test").Return(newStoredUser(t, "Other#Pass1", true), nil)
		f.limiter.On("RecordFailure", mock.Anything, "front@clinic.test").Return(int64(2), nil)

		_, err := f.usecase().Login(context.Background(), request)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
		f.limiter.AssertCalled(t, "RecordFailure", mock.Anything, "front@clinic.test")
		f.sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("Unknown email is indistinguishable from a wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Blocked", mock.Anything, "front@clinic.test").Return(false, nil)
		f.userRepo.On("FindByEmail", mock.Anything, "front@clinic.test").Return(nil, nil)
		f.limiter.On("RecordFailure", mock.Anything, "front@clinic.test").Return(int64(1), nil)

		_, err := f.usecase().Login(context.Background(), request)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	})

	t.Run("Blocked email is rejected before lookup", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Blocked", mock.Anything, "front@clinic.test").Return(true, nil)

		_, err := f.usecase().Login(context.Background(), request)
		assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCode(err))
		f.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Inactive account cannot login", func(t *testing.T) {
		f := newAuthFixture()
		f.limiter.On("Blocked", mock.Anything, "front@clinic.test").Return(false, nil)
		f.userRepo.On("FindByEmail", mock.Anything, "front@clinic.test").Return(newStoredUser(t, "Secret#Pass1", false), nil)

		_, err := f.usecase().Login(context.Background(), request)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
		f.sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	f := newAuthFixture()
	f.sessionService.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

	require.NoError(t, f.usecase().Logout(context.Background(), &models.Session{SessionID: "sess-1"}))
	f.sessionService.AssertExpectations(t)
}

func TestMe(t *testing.T) {
	f := newAuthFixture()
	user := newStoredUser(t, "Secret#Pass1", true)
	f.userRepo.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)

	response, err := f.usecase().Me(context.Background(), &models.Session{UserID: user.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "front@clinic.test", response.Email)
}
