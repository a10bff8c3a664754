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

type BranchController struct {
	Log           *zap.Logger
	BranchUsecase contracts.BranchUsecase
}

var (
	branchControllerInstance *BranchController
	onceBranchController     sync.Once
)

func NewBranchController(logger *zap.Logger, branchUsecase contracts.BranchUsecase) *BranchController {
	onceBranchController.Do(func() {
		branchControllerInstance = &BranchController{
			Log:           logger,
			BranchUsecase: branchUsecase,
		}
	})
	return branchControllerInstance
}

func (ctrl *BranchController) CreateBranch(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("BranchController.CreateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Branch)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	branch, err := ctrl.BranchUsecase.CreateBranch(ctx, request)
	if err != nil {
		ctrl.Log.Error("BranchController.CreateBranch error from BranchUsecase.CreateBranch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("BranchController.CreateBranch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, branch.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBranchSuccessMessage, branch)
}

func (ctrl *BranchController) FindAllBranches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	branches, err := ctrl.BranchUsecase.FindAllBranches(ctx)
	if err != nil {
		ctrl.Log.Error("BranchController.FindAllBranches error from BranchUsecase.FindAllBranches",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBranchesSuccessMessage, branches)
}

func (ctrl *BranchController) FindBranchByID(w http.ResponseWriter, r *http.Request) {
	branchID, err := objectIDParam(r, constvars.URLParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	branch, err := ctrl.BranchUsecase.FindBranchByID(ctx, branchID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBranchSuccessMessage, branch)
}

func (ctrl *BranchController) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("BranchController.UpdateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	branchID, err := objectIDParam(r, constvars.URLParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Branch)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	branch, err := ctrl.BranchUsecase.UpdateBranch(ctx, branchID, request)
	if err != nil {
		ctrl.Log.Error("BranchController.UpdateBranch error from BranchUsecase.UpdateBranch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBranchSuccessMessage, branch)
}

func (ctrl *BranchController) DeactivateBranch(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("BranchController.DeactivateBranch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	branchID, err := objectIDParam(r, constvars.URLParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.BranchUsecase.DeactivateBranch(ctx, branchID)
	if err != nil {
		ctrl.Log.Error("BranchController.DeactivateBranch error from BranchUsecase.DeactivateBranch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBranchSuccessMessage, nil)
}
