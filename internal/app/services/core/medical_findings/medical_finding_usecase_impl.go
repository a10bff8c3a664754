package medical_findings

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type medicalFindingUsecase struct {
	MedicalFindingRepository contracts.MedicalFindingRepository
	PatientRepository        contracts.PatientRepository
	UserRepository           contracts.UserRepository
	Log                      *zap.Logger
}

func NewMedicalFindingUsecase(
	medicalFindingRepository contracts.MedicalFindingRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.MedicalFindingUsecase {
	return &medicalFindingUsecase{
		MedicalFindingRepository: medicalFindingRepository,
		PatientRepository:        patientRepository,
		UserRepository:           userRepository,
		Log:                      logger,
	}
}

func (uc *medicalFindingUsecase) CreateFinding(ctx context.Context, request *requests.MedicalFinding) (*models.MedicalFinding, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalFindingUsecase.CreateFinding called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	finding := new(models.MedicalFinding)
	err := uc.applyRequest(ctx, finding, request)
	if err != nil {
		return nil, err
	}
	finding.SetCreatedAtUpdatedAt()

	findingID, err := uc.MedicalFindingRepository.Create(ctx, finding)
	if err != nil {
		uc.Log.Error("medicalFindingUsecase.CreateFinding error calling MedicalFindingRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	finding.ID, _ = primitive.ObjectIDFromHex(findingID)
	return finding, nil
}

func (uc *medicalFindingUsecase) FindFindingsByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error) {
	if err := uc.ensurePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return uc.MedicalFindingRepository.FindAllByPatient(ctx, patientID)
}

func (uc *medicalFindingUsecase) FindFindingByID(ctx context.Context, findingID string) (*models.MedicalFinding, error) {
	finding, err := uc.MedicalFindingRepository.FindByID(ctx, findingID)
	if err != nil {
		return nil, err
	}
	if finding == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "medical finding")
	}
	return finding, nil
}

func (uc *medicalFindingUsecase) UpdateFinding(ctx context.Context, findingID string, request *requests.MedicalFinding) (*models.MedicalFinding, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalFindingUsecase.UpdateFinding called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	finding, err := uc.FindFindingByID(ctx, findingID)
	if err != nil {
		return nil, err
	}

	err = uc.applyRequest(ctx, finding, request)
	if err != nil {
		return nil, err
	}

	err = uc.MedicalFindingRepository.Update(ctx, finding)
	if err != nil {
		uc.Log.Error("medicalFindingUsecase.UpdateFinding error calling MedicalFindingRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return finding, nil
}

func (uc *medicalFindingUsecase) DeleteFinding(ctx context.Context, findingID string) error {
	if _, err := uc.FindFindingByID(ctx, findingID); err != nil {
		return err
	}
	return uc.MedicalFindingRepository.Delete(ctx, findingID)
}

// GetDentalChart keeps the most recent finding of every tooth, ordered by
// tooth number.
func (uc *medicalFindingUsecase) GetDentalChart(ctx context.Context, patientID string) (*responses.DentalChart, error) {
	findings, err := uc.FindFindingsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	latest := make(map[int]models.MedicalFinding)
	for _, finding := range findings {
		current, ok := latest[finding.ToothNumber]
		if !ok || finding.RecordedAt.After(current.RecordedAt) {
			latest[finding.ToothNumber] = finding
		}
	}

	teeth := make([]responses.ToothStatus, 0, len(latest))
	for _, finding := range latest {
		teeth = append(teeth, responses.ToothStatus{
			ToothNumber: finding.ToothNumber,
			Type:        finding.Type,
			Surface:     finding.Surface,
			Diagnosis:   finding.Diagnosis,
			Treatment:   finding.Treatment,
			FindingID:   finding.ID.Hex(),
			RecordedAt:  finding.RecordedAt,
		})
	}
	sort.Slice(teeth, func(i, j int) bool {
		return teeth[i].ToothNumber < teeth[j].ToothNumber
	})

	return &responses.DentalChart{
		PatientID: patientID,
		Teeth:     teeth,
	}, nil
}

func (uc *medicalFindingUsecase) applyRequest(ctx context.Context, finding *models.MedicalFinding, request *requests.MedicalFinding) error {
	if !utils.IsValidToothNumber(request.ToothNumber) {
		return exceptions.ErrBadRequestRule(nil, constvars.ErrClientInvalidToothNumber)
	}

	if err := uc.ensurePatient(ctx, request.PatientID); err != nil {
		return err
	}

	dentistID := request.DentistID
	if dentistID == "" {
		dentistID = session.ActorFromContext(ctx)
	}
	dentist, err := uc.UserRepository.FindByID(ctx, dentistID)
	if err != nil {
		return err
	}
	if dentist == nil || dentist.Role != constvars.RoleDentist || !dentist.Active {
		return exceptions.ErrBadRequestRule(nil, constvars.ErrClientNotDentist)
	}

	appointmentID, err := utils.ToOptionalObjectID(request.AppointmentID)
	if err != nil {
		return err
	}

	finding.PatientID, _ = primitive.ObjectIDFromHex(request.PatientID)
	finding.AppointmentID = appointmentID
	finding.DentistID = dentist.ID
	finding.ToothNumber = request.ToothNumber
	finding.Surface = request.Surface
	finding.Type = request.Type
	finding.Diagnosis = request.Diagnosis
	finding.Treatment = request.Treatment
	finding.Notes = request.Notes
	if request.RecordedAt != nil {
		finding.RecordedAt = *request.RecordedAt
	} else if finding.RecordedAt.IsZero() {
		finding.RecordedAt = time.Now()
	}
	return nil
}

func (uc *medicalFindingUsecase) ensurePatient(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrDocumentNotFound(nil, "patient")
	}
	return nil
}
