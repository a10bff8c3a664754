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

type InventoryController struct {
	Log              *zap.Logger
	InventoryUsecase contracts.InventoryUsecase
}

var (
	inventoryControllerInstance *InventoryController
	onceInventoryController     sync.Once
)

func NewInventoryController(logger *zap.Logger, inventoryUsecase contracts.InventoryUsecase) *InventoryController {
	onceInventoryController.Do(func() {
		inventoryControllerInstance = &InventoryController{
			Log:              logger,
			InventoryUsecase: inventoryUsecase,
		}
	})
	return inventoryControllerInstance
}

func (ctrl *InventoryController) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InventoryController.ReceiveStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ReceiveStock)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("InventoryController.ReceiveStock invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	batch, err := ctrl.InventoryUsecase.ReceiveStock(ctx, request)
	if err != nil {
		ctrl.Log.Error("InventoryController.ReceiveStock error from InventoryUsecase.ReceiveStock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("InventoryController.ReceiveStock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int(constvars.LoggingQuantityKey, request.Quantity),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReceiveStockSuccessMessage, batch)
}

func (ctrl *InventoryController) AdjustStock(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InventoryController.AdjustStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AdjustStock)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	movement, err := ctrl.InventoryUsecase.AdjustStock(ctx, request)
	if err != nil {
		ctrl.Log.Error("InventoryController.AdjustStock error from InventoryUsecase.AdjustStock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdjustStockSuccessMessage, movement)
}

func (ctrl *InventoryController) TransferStock(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InventoryController.TransferStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.TransferStock)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	movements, err := ctrl.InventoryUsecase.TransferStock(ctx, request)
	if err != nil {
		ctrl.Log.Error("InventoryController.TransferStock error from InventoryUsecase.TransferStock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("InventoryController.TransferStock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(movements)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TransferStockSuccessMessage, movements)
}

func (ctrl *InventoryController) FindStockByBranch(w http.ResponseWriter, r *http.Request) {
	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stocks, err := ctrl.InventoryUsecase.FindStockByBranch(ctx, branchID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStocksSuccessMessage, stocks)
}

func (ctrl *InventoryController) FindLowStock(w http.ResponseWriter, r *http.Request) {
	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	items, err := ctrl.InventoryUsecase.FindLowStock(ctx, branchID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLowStocksSuccessMessage, items)
}

func (ctrl *InventoryController) FindBatches(w http.ResponseWriter, r *http.Request) {
	productID, err := optionalObjectIDQuery(r, constvars.URLQueryParamProductID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	batches, err := ctrl.InventoryUsecase.FindBatches(ctx, productID, branchID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBatchesSuccessMessage, batches)
}

func (ctrl *InventoryController) FindAllStockMovements(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindAllStockMovements{
		Pagination: utils.BuildPaginationRequest(r),
	}

	var err error
	request.ProductID, err = optionalObjectIDQuery(r, constvars.URLQueryParamProductID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.BranchID, err = optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DateRange, err = utils.BuildDateRangeRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	movements, total, err := ctrl.InventoryUsecase.FindAllStockMovements(ctx, request)
	if err != nil {
		ctrl.Log.Error("InventoryController.FindAllStockMovements error from InventoryUsecase.FindAllStockMovements",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetStockMovementsSuccessMessage, pagination, movements)
}
