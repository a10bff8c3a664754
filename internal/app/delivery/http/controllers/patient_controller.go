package controllers

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

const (
	attachmentFormFileKey        = "file"
	attachmentFormDescriptionKey = "description"
	multipartMemoryLimit         = 8 << 20
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	oncePatientController.Do(func() {
		patientControllerInstance = &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
			InternalConfig: internalConfig,
		}
	})
	return patientControllerInstance
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PatientController.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Patient)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		ctrl.Log.Error("PatientController.CreatePatient invalid request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.CreatePatient error from PatientUsecase.CreatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("PatientController.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, patient)
}

func (ctrl *PatientController) FindAllPatients(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PatientController.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.FindAllPatients{
		Search:     r.URL.Query().Get(constvars.URLQueryParamSearch),
		BranchID:   branchID,
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patients, total, err := ctrl.PatientUsecase.FindAllPatients(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.FindAllPatients error from PatientUsecase.FindAllPatients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage, pagination, patients)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientUsecase.FindPatientByID(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.FindPatientByID error from PatientUsecase.FindPatientByID",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, patient)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PatientController.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Patient)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatient(ctx, patientID, request)
	if err != nil {
		ctrl.Log.Error("PatientController.UpdatePatient error from PatientUsecase.UpdatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, patient)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PatientController.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = ctrl.PatientUsecase.DeletePatient(ctx, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.DeletePatient error from PatientUsecase.DeletePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, nil)
}

func (ctrl *PatientController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PatientController.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxBytes := ctrl.InternalConfig.Attachment.MaxUploadSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemoryLimit)
	err = r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		ctrl.Log.Error("PatientController.UploadAttachment error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(attachmentFormFileKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileValidation(err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	request := &requests.UploadAttachment{
		PatientID:   patientID,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Description: r.FormValue(attachmentFormDescriptionKey),
		File:        file,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	attachment, err := ctrl.PatientUsecase.UploadAttachment(ctx, request)
	if err != nil {
		ctrl.Log.Error("PatientController.UploadAttachment error from PatientUsecase.UploadAttachment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("PatientController.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, attachment)
}

func (ctrl *PatientController) GetAttachmentURL(w http.ResponseWriter, r *http.Request) {
	patientID, err := objectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attachmentID, err := objectIDParam(r, constvars.URLParamAttachmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetAttachmentURL(ctx, patientID, attachmentID)
	if err != nil {
		ctrl.Log.Error("PatientController.GetAttachmentURL error from PatientUsecase.GetAttachmentURL",
			zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentURLSuccessMessage, response)
}
