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

type TreatmentController struct {
	Log              *zap.Logger
	TreatmentUsecase contracts.TreatmentUsecase
}

var (
	treatmentControllerInstance *TreatmentController
	onceTreatmentController     sync.Once
)

func NewTreatmentController(logger *zap.Logger, treatmentUsecase contracts.TreatmentUsecase) *TreatmentController {
	onceTreatmentController.Do(func() {
		treatmentControllerInstance = &TreatmentController{
			Log:              logger,
			TreatmentUsecase: treatmentUsecase,
		}
	})
	return treatmentControllerInstance
}

func (ctrl *TreatmentController) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Treatment)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	treatment, err := ctrl.TreatmentUsecase.CreateTreatment(ctx, request)
	if err != nil {
		ctrl.Log.Error("TreatmentController.CreateTreatment error from TreatmentUsecase.CreateTreatment",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTreatmentSuccessMessage, treatment)
}

func (ctrl *TreatmentController) FindAllTreatments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	treatments, err := ctrl.TreatmentUsecase.FindAllTreatments(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTreatmentsSuccessMessage, treatments)
}

func (ctrl *TreatmentController) FindTreatmentByID(w http.ResponseWriter, r *http.Request) {
	treatmentID, err := objectIDParam(r, constvars.URLParamTreatmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	treatment, err := ctrl.TreatmentUsecase.FindTreatmentByID(ctx, treatmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTreatmentSuccessMessage, treatment)
}

func (ctrl *TreatmentController) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	treatmentID, err := objectIDParam(r, constvars.URLParamTreatmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Treatment)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	treatment, err := ctrl.TreatmentUsecase.UpdateTreatment(ctx, treatmentID, request)
	if err != nil {
		ctrl.Log.Error("TreatmentController.UpdateTreatment error from TreatmentUsecase.UpdateTreatment",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTreatmentSuccessMessage, treatment)
}

func (ctrl *TreatmentController) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	treatmentID, err := objectIDParam(r, constvars.URLParamTreatmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.TreatmentUsecase.DeleteTreatment(ctx, treatmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTreatmentSuccessMessage, nil)
}
