package session

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		BranchIDs: user.BranchIDStrings(),
		ExpiresAt: time.Now().Add(svc.TTL),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, svc.TTL)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseSessionData(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}
