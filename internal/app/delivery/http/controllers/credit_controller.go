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

type CreditController struct {
	Log           *zap.Logger
	CreditUsecase contracts.CreditUsecase
}

var (
	creditControllerInstance *CreditController
	onceCreditController     sync.Once
)

func NewCreditController(logger *zap.Logger, creditUsecase contracts.CreditUsecase) *CreditController {
	onceCreditController.Do(func() {
		creditControllerInstance = &CreditController{
			Log:           logger,
			CreditUsecase: creditUsecase,
		}
	})
	return creditControllerInstance
}

func (ctrl *CreditController) Deposit(w http.ResponseWriter, r *http.Request) {
	ctrl.movement(w, r, "Deposit", ctrl.CreditUsecase.Deposit, constvars.DepositCreditSuccessMessage)
}

func (ctrl *CreditController) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctrl.movement(w, r, "Withdraw", ctrl.CreditUsecase.Withdraw, constvars.WithdrawCreditSuccessMessage)
}

type creditMovementFunc func(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error)

func (ctrl *CreditController) movement(w http.ResponseWriter, r *http.Request, name string, apply creditMovementFunc, message string) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("CreditController."+name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreditMovement)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entry, err := apply(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("CreditController."+name+" error from CreditUsecase."+name,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("CreditController."+name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingAmountKey, entry.Amount),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, entry)
}

func (ctrl *CreditController) FindCreditHistory(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, total, err := ctrl.CreditUsecase.FindCreditHistory(ctx, patientID, pagination)
	if err != nil {
		ctrl.Log.Error("CreditController.FindCreditHistory error from CreditUsecase.FindCreditHistory",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetCreditHistorySuccessMessage, paginationResponse, entries)
}

func (ctrl *CreditController) GetCreditBalance(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	balance, err := ctrl.CreditUsecase.GetCreditBalance(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientCreditSuccessMessage, balance)
}
