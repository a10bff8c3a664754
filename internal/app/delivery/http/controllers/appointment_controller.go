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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Appointment)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error from AppointmentUsecase.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) FindAllAppointments(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("AppointmentController.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request := &requests.FindAllAppointments{
		Status:     r.URL.Query().Get(constvars.URLQueryParamStatus),
		Pagination: utils.BuildPaginationRequest(r),
	}

	var err error
	for param, dst := range map[string]*string{
		constvars.URLQueryParamBranchID:  &request.BranchID,
		constvars.URLQueryParamDentistID: &request.DentistID,
		constvars.URLQueryParamPatientID: &request.PatientID,
	} {
		*dst, err = optionalObjectIDQuery(r, param)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	request.DateRange, err = utils.BuildDateRangeRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointments, total, err := ctrl.AppointmentUsecase.FindAllAppointments(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAllAppointments error from AppointmentUsecase.FindAllAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, pagination, appointments)
}

func (ctrl *AppointmentController) FindAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := objectIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("AppointmentController.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := objectIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Appointment)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.UpdateAppointment error from AppointmentUsecase.UpdateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) ChangeAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("AppointmentController.ChangeAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointmentID, err := objectIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ChangeAppointmentStatus)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.ChangeAppointmentStatus(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.ChangeAppointmentStatus error from AppointmentUsecase.ChangeAppointmentStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ChangeAppointmentStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, appointment.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChangeAppointmentStatusMessage, appointment)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	appointmentID, err := objectIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.AppointmentUsecase.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.DeleteAppointment error from AppointmentUsecase.DeleteAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
