package patients

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const bytesInMegabyte = 1024 * 1024

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	BranchRepository  contracts.BranchRepository
	Storage           contracts.AttachmentStorage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	branchRepository contracts.BranchRepository,
	storage contracts.AttachmentStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		BranchRepository:  branchRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.Patient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, request.BranchID),
	)

	patient := &models.Patient{
		FileNumber:  utils.GeneratePatientFileNumber(time.Now()),
		Attachments: []models.Attachment{},
	}
	err := uc.applyRequest(ctx, patient, request)
	if err != nil {
		return nil, err
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error calling PatientRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID, _ = primitive.ObjectIDFromHex(patientID)

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Search = strings.TrimSpace(request.Search)
	patients, total, err := uc.PatientRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAllPatients error calling PatientRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return patients, total, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "patient")
	}
	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.Patient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	err = uc.applyRequest(ctx, patient, request)
	if err != nil {
		return nil, err
	}

	err = uc.PatientRepository.Update(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error calling PatientRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := uc.FindPatientByID(ctx, patientID); err != nil {
		return err
	}

	err := uc.PatientRepository.SoftDelete(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatient error calling PatientRepository.SoftDelete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *patientUsecase) UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int64("size", request.Size),
	)

	err := uc.validateAttachment(request)
	if err != nil {
		return nil, err
	}

	if _, err = uc.FindPatientByID(ctx, request.PatientID); err != nil {
		return nil, err
	}

	objectKey := utils.GenerateAttachmentObjectKey(request.PatientID, request.FileName)
	err = uc.Storage.Upload(ctx, objectKey, request.File, request.Size, request.ContentType)
	if err != nil {
		uc.Log.Error("patientUsecase.UploadAttachment error calling Storage.Upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	attachment := &models.Attachment{
		ID:          primitive.NewObjectID(),
		FileName:    request.FileName,
		ObjectKey:   objectKey,
		ContentType: request.ContentType,
		Size:        request.Size,
		Description: request.Description,
		UploadedBy:  session.ActorFromContext(ctx),
		UploadedAt:  time.Now(),
	}

	err = uc.PatientRepository.AddAttachment(ctx, request.PatientID, attachment)
	if err != nil {
		uc.Log.Error("patientUsecase.UploadAttachment error calling PatientRepository.AddAttachment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return attachment, nil
}

func (uc *patientUsecase) GetAttachmentURL(ctx context.Context, patientID, attachmentID string) (*responses.AttachmentURL, error) {
	patient, err := uc.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var attachment *models.Attachment
	for i := range patient.Attachments {
		if patient.Attachments[i].ID.Hex() == attachmentID {
			attachment = &patient.Attachments[i]
			break
		}
	}
	if attachment == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "attachment")
	}

	expiry := time.Duration(uc.InternalConfig.Attachment.PresignedURLExpiryInMinutes) * time.Minute
	url, err := uc.Storage.PresignedURL(ctx, attachment.ObjectKey, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.AttachmentURL{
		AttachmentID: attachmentID,
		FileName:     attachment.FileName,
		URL:          url,
		ExpiresAt:    time.Now().Add(expiry),
	}, nil
}

func (uc *patientUsecase) applyRequest(ctx context.Context, patient *models.Patient, request *requests.Patient) error {
	branch, err := uc.BranchRepository.FindByID(ctx, request.BranchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return exceptions.ErrDocumentNotFound(nil, "branch")
	}

	birthDate, err := utils.ParseDate(request.BirthDate)
	if err != nil {
		return err
	}

	patient.FirstName = strings.TrimSpace(request.FirstName)
	patient.LastName = strings.TrimSpace(request.LastName)
	patient.BirthDate = birthDate
	patient.Gender = request.Gender
	patient.Phone = request.Phone
	patient.Email = utils.NormalizeEmail(request.Email)
	patient.Address = request.Address
	patient.BranchID = branch.ID
	patient.Allergies = utils.CleanStrings(request.Allergies)
	patient.MedicalHistory = request.MedicalHistory
	patient.Notes = request.Notes
	return nil
}

func (uc *patientUsecase) validateAttachment(request *requests.UploadAttachment) error {
	maxSize := uc.InternalConfig.Attachment.MaxUploadSizeInMB * bytesInMegabyte
	if request.Size <= 0 || request.Size > maxSize {
		return exceptions.ErrFileValidation(fmt.Errorf("file size %d outside 1..%d bytes", request.Size, maxSize))
	}

	for _, allowed := range uc.InternalConfig.Attachment.AllowedContentTypes {
		if strings.EqualFold(allowed, request.ContentType) {
			return nil
		}
	}
	return exceptions.ErrFileValidation(fmt.Errorf("content type %q is not allowed", request.ContentType))
}
