package auth

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	AttemptLimiter contracts.AttemptLimiter
	JWTSecret      string
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	attemptLimiter contracts.AttemptLimiter,
	jwtSecret string,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		AttemptLimiter: attemptLimiter,
		JWTSecret:      jwtSecret,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := utils.NormalizeEmail(request.Email)
	blocked, err := uc.AttemptLimiter.Blocked(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling AttemptLimiter.Blocked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if blocked {
		uc.Log.Warn("authUsecase.Login blocked after repeated failures",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTooManyRequests(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.recordFailure(ctx, requestID, email)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !user.Active {
		return nil, exceptions.ErrAccountInactive(nil)
	}

	err = uc.AttemptLimiter.Reset(ctx, email)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error calling AttemptLimiter.Reset",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	session, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling SessionService.CreateSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.JWTSecret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	return &responses.Login{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      user.ConvertIntoResponse(),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionService.DeleteSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "user")
	}
	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *authUsecase) recordFailure(ctx context.Context, requestID, email string) {
	count, err := uc.AttemptLimiter.RecordFailure(ctx, email)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error calling AttemptLimiter.RecordFailure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	uc.Log.Info("authUsecase.Login invalid credentials",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, count),
	)
}
