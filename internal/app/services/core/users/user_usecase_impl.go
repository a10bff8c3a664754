package users

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

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	email := utils.NormalizeEmail(request.Email)
	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	branchIDs, err := utils.ToObjectIDs(request.BranchIDs)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:     email,
		FullName:  request.FullName,
		Password:  hashedPassword,
		Role:      request.Role,
		Phone:     request.Phone,
		BranchIDs: branchIDs,
		Active:    true,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.Create(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error calling UserRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID, _ = utils.ToObjectID(userID)

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) FindAllUsers(ctx context.Context, request *requests.FindAllUsers) ([]responses.User, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAllUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, total, err := uc.UserRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("userUsecase.FindAllUsers error calling UserRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.User, 0, len(users))
	for _, user := range users {
		response = append(response, user.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *userUsecase) FindUserByID(ctx context.Context, userID string) (*responses.User, error) {
	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	branchIDs, err := utils.ToObjectIDs(request.BranchIDs)
	if err != nil {
		return nil, err
	}

	user.FullName = request.FullName
	user.Role = request.Role
	user.Phone = request.Phone
	user.BranchIDs = branchIDs
	if request.Password != "" {
		user.Password, err = utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
	}

	err = uc.UserRepository.Update(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUser error calling UserRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) DeactivateUser(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeactivateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Active = false
	err = uc.UserRepository.Update(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.DeactivateUser error calling UserRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *userUsecase) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "user")
	}
	return user, nil
}
