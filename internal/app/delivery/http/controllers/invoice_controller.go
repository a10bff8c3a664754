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

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase contracts.InvoiceUsecase
}

var (
	invoiceControllerInstance *InvoiceController
	onceInvoiceController     sync.Once
)

func NewInvoiceController(logger *zap.Logger, invoiceUsecase contracts.InvoiceUsecase) *InvoiceController {
	onceInvoiceController.Do(func() {
		invoiceControllerInstance = &InvoiceController{
			Log:            logger,
			InvoiceUsecase: invoiceUsecase,
		}
	})
	return invoiceControllerInstance
}

func (ctrl *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InvoiceController.CreateInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateInvoice)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.CreateInvoice invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	invoice, err := ctrl.InvoiceUsecase.CreateInvoice(ctx, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.CreateInvoice error from InvoiceUsecase.CreateInvoice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("InvoiceController.CreateInvoice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.ID.Hex()),
		zap.Int64(constvars.LoggingAmountKey, invoice.Total),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateInvoiceSuccessMessage, invoice)
}

func (ctrl *InvoiceController) FindAllInvoices(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InvoiceController.FindAllInvoices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request := &requests.FindAllInvoices{
		Status:     r.URL.Query().Get(constvars.URLQueryParamStatus),
		Pagination: utils.BuildPaginationRequest(r),
	}

	var err error
	request.PatientID, err = optionalObjectIDQuery(r, constvars.URLQueryParamPatientID)
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

	invoices, total, err := ctrl.InvoiceUsecase.FindAllInvoices(ctx, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.FindAllInvoices error from InvoiceUsecase.FindAllInvoices",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetInvoicesSuccessMessage, pagination, invoices)
}

func (ctrl *InvoiceController) FindInvoiceByID(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := objectIDParam(r, constvars.URLParamInvoiceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	invoice, err := ctrl.InvoiceUsecase.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInvoiceSuccessMessage, invoice)
}

func (ctrl *InvoiceController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("InvoiceController.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	invoiceID, err := objectIDParam(r, constvars.URLParamInvoiceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RecordPayment)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.InvoiceUsecase.RecordPayment(ctx, invoiceID, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.RecordPayment error from InvoiceUsecase.RecordPayment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("InvoiceController.RecordPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordPaymentSuccessMessage, result)
}

func (ctrl *InvoiceController) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	invoiceID, err := objectIDParam(r, constvars.URLParamInvoiceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CancelInvoice)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	invoice, err := ctrl.InvoiceUsecase.CancelInvoice(ctx, invoiceID, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.CancelInvoice error from InvoiceUsecase.CancelInvoice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelInvoiceSuccessMessage, invoice)
}
