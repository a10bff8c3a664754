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

type MedicalFindingController struct {
	Log                   *zap.Logger
	MedicalFindingUsecase contracts.MedicalFindingUsecase
}

var (
	medicalFindingControllerInstance *MedicalFindingController
	onceMedicalFindingController     sync.Once
)

func NewMedicalFindingController(logger *zap.Logger, medicalFindingUsecase contracts.MedicalFindingUsecase) *MedicalFindingController {
	onceMedicalFindingController.Do(func() {
		medicalFindingControllerInstance = &MedicalFindingController{
			Log:                   logger,
			MedicalFindingUsecase: medicalFindingUsecase,
		}
	})
	return medicalFindingControllerInstance
}

func (ctrl *MedicalFindingController) CreateFinding(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("MedicalFindingController.CreateFinding called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.MedicalFinding)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("MedicalFindingController.CreateFinding invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	finding, err := ctrl.MedicalFindingUsecase.CreateFinding(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicalFindingController.CreateFinding error from MedicalFindingUsecase.CreateFinding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateFindingSuccessMessage, finding)
}

func (ctrl *MedicalFindingController) FindFindingsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	findings, err := ctrl.MedicalFindingUsecase.FindFindingsByPatient(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("MedicalFindingController.FindFindingsByPatient error from MedicalFindingUsecase.FindFindingsByPatient",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFindingsSuccessMessage, findings)
}

func (ctrl *MedicalFindingController) GetDentalChart(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	chart, err := ctrl.MedicalFindingUsecase.GetDentalChart(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDentalChartSuccessMessage, chart)
}

func (ctrl *MedicalFindingController) FindFindingByID(w http.ResponseWriter, r *http.Request) {
	findingID, err := objectIDParam(r, constvars.URLParamFindingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	finding, err := ctrl.MedicalFindingUsecase.FindFindingByID(ctx, findingID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFindingSuccessMessage, finding)
}

func (ctrl *MedicalFindingController) UpdateFinding(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	findingID, err := objectIDParam(r, constvars.URLParamFindingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.MedicalFinding)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	finding, err := ctrl.MedicalFindingUsecase.UpdateFinding(ctx, findingID, request)
	if err != nil {
		ctrl.Log.Error("MedicalFindingController.UpdateFinding error from MedicalFindingUsecase.UpdateFinding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFindingSuccessMessage, finding)
}

func (ctrl *MedicalFindingController) DeleteFinding(w http.ResponseWriter, r *http.Request) {
	findingID, err := objectIDParam(r, constvars.URLParamFindingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.MedicalFindingUsecase.DeleteFinding(ctx, findingID)
	if err != nil {
		ctrl.Log.Error("MedicalFindingController.DeleteFinding error from MedicalFindingUsecase.DeleteFinding",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteFindingSuccessMessage, nil)
}
