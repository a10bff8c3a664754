package session

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateSession(t *testing.T) {
	redisRepo := new(mocks.RedisRepository)
	svc := NewSessionService(redisRepo, time.Hour)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "dentist@clinic.test",
		FullName: "Dr. Rivera",
		Role:     constvars.RoleDentist,
	}
	redisRepo.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("session:")
	}), mock.AnythingOfType("*models.Session"), time.Hour).Return(nil)

	session, err := svc.CreateSession(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), session.UserID)
	assert.Equal(t, constvars.RoleDentist, session.Role)
	assert.NotEmpty(t, session.SessionID)
	redisRepo.AssertExpectations(t)
}

func TestGetSession(t *testing.T) {
	t.Run("Stored session is decoded", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		svc := NewSessionService(redisRepo, time.Hour)
		redisRepo.On("Get", mock.Anything, "session:abc").
			Return(`{"session_id":"abc","user_id":"u1","role":"receptionist"}`, nil)

		session, err := svc.GetSession(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, constvars.RoleReceptionist, session.Role)
	})

	t.Run("Missing session is unauthorized", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		svc := NewSessionService(redisRepo, time.Hour)
		redisRepo.On("Get", mock.Anything, "session:gone").Return("", nil)

		_, err := svc.GetSession(context.Background(), "gone")
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("Corrupt session is unauthorized", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		svc := NewSessionService(redisRepo, time.Hour)
		redisRepo.On("Get", mock.Anything, "session:bad").Return("{not json", nil)

		_, err := svc.GetSession(context.Background(), "bad")
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
	})
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, "system", ActorFromContext(context.Background()))

	ctx := WithSession(context.Background(), &models.Session{UserID: "u-42"})
	assert.Equal(t, "u-42", ActorFromContext(ctx))

	session, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u-42", session.UserID)
}
