package controllers

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:         logger,
			UserUsecase: userUsecase,
		}
	})
	return userControllerInstance
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("UserController.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateUser)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("UserController.CreateUser invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.CreateUser(ctx, request)
	if err != nil {
		ctrl.Log.Error("UserController.CreateUser error from UserUsecase.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("UserController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, response)
}

func (ctrl *UserController) FindAllUsers(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("UserController.FindAllUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindAllUsers{
		Role:       r.URL.Query().Get(constvars.URLQueryParamRole),
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, total, err := ctrl.UserUsecase.FindAllUsers(ctx, request)
	if err != nil {
		ctrl.Log.Error("UserController.FindAllUsers error from UserUsecase.FindAllUsers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, pagination, users)
}

func (ctrl *UserController) FindUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := objectIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.FindUserByID(ctx, userID)
	if err != nil {
		ctrl.Log.Error("UserController.FindUserByID error from UserUsecase.FindUserByID",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

func (ctrl *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("UserController.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, err := objectIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateUser)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpdateUser invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.UserUsecase.UpdateUser(ctx, userID, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpdateUser error from UserUsecase.UpdateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("UserController.UpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, response)
}

func (ctrl *UserController) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("UserController.DeactivateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, err := objectIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.UserUsecase.DeactivateUser(ctx, userID)
	if err != nil {
		ctrl.Log.Error("UserController.DeactivateUser error from UserUsecase.DeactivateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeactivateUserSuccessMessage, nil)
}
