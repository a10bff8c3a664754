package controllers

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type WithdrawalController struct {
	Log               *zap.Logger
	WithdrawalUsecase contracts.WithdrawalUsecase
}

var (
	withdrawalControllerInstance *WithdrawalController
	onceWithdrawalController     sync.Once
)

func NewWithdrawalController(logger *zap.Logger, withdrawalUsecase contracts.WithdrawalUsecase) *WithdrawalController {
	onceWithdrawalController.Do(func() {
		withdrawalControllerInstance = &WithdrawalController{
			Log:               logger,
			WithdrawalUsecase: withdrawalUsecase,
		}
	})
	return withdrawalControllerInstance
}

func (ctrl *WithdrawalController) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("WithdrawalController.CreateWithdrawal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateWithdrawal)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("WithdrawalController.CreateWithdrawal invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	withdrawal, err := ctrl.WithdrawalUsecase.CreateWithdrawal(ctx, request)
	if err != nil {
		ctrl.Log.Error("WithdrawalController.CreateWithdrawal error from WithdrawalUsecase.CreateWithdrawal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateWithdrawalSuccessMessage, withdrawal)
}

func (ctrl *WithdrawalController) FindAllWithdrawals(w http.ResponseWriter, r *http.Request) {
	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.FindAllWithdrawals{
		BranchID:   branchID,
		Status:     r.URL.Query().Get(constvars.URLQueryParamStatus),
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	withdrawals, total, err := ctrl.WithdrawalUsecase.FindAllWithdrawals(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetWithdrawalsSuccessMessage, pagination, withdrawals)
}

func (ctrl *WithdrawalController) FindWithdrawalByID(w http.ResponseWriter, r *http.Request) {
	withdrawalID, err := objectIDParam(r, constvars.URLParamWithdrawalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	withdrawal, err := ctrl.WithdrawalUsecase.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWithdrawalSuccessMessage, withdrawal)
}

func (ctrl *WithdrawalController) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	ctrl.review(w, r, "ApproveWithdrawal", ctrl.WithdrawalUsecase.ApproveWithdrawal, constvars.ApproveWithdrawalSuccessMessage)
}

func (ctrl *WithdrawalController) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	ctrl.review(w, r, "RejectWithdrawal", ctrl.WithdrawalUsecase.RejectWithdrawal, constvars.RejectWithdrawalSuccessMessage)
}

type withdrawalReviewFunc func(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error)

func (ctrl *WithdrawalController) review(w http.ResponseWriter, r *http.Request, name string, apply withdrawalReviewFunc, message string) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("WithdrawalController."+name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	withdrawalID, err := objectIDParam(r, constvars.URLParamWithdrawalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// the review note is optional, so an empty body is accepted
	request := new(requests.ReviewWithdrawal)
	if r.ContentLength != 0 {
		err = utils.DecodeAndValidate(r, request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	withdrawal, err := apply(ctx, withdrawalID, request)
	if err != nil {
		ctrl.Log.Error("WithdrawalController."+name+" error from WithdrawalUsecase."+name,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("WithdrawalController."+name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, withdrawal)
}
