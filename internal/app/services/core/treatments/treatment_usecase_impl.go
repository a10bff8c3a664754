package treatments

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"strings"

	"go.uber.org/zap"
)

type treatmentUsecase struct {
	TreatmentRepository contracts.TreatmentRepository
	Log                 *zap.Logger
}

func NewTreatmentUsecase(treatmentRepository contracts.TreatmentRepository, logger *zap.Logger) contracts.TreatmentUsecase {
	return &treatmentUsecase{
		TreatmentRepository: treatmentRepository,
		Log:                 logger,
	}
}

func (uc *treatmentUsecase) CreateTreatment(ctx context.Context, request *requests.Treatment) (*models.Treatment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.CreateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	code := strings.ToUpper(strings.TrimSpace(request.Code))
	existing, err := uc.TreatmentRepository.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDocumentAlreadyExists(nil, "treatment")
	}

	treatment := &models.Treatment{
		Code:   code,
		Name:   request.Name,
		Price:  request.Price,
		Active: request.Active == nil || *request.Active,
	}
	treatment.SetCreatedAtUpdatedAt()

	treatmentID, err := uc.TreatmentRepository.Create(ctx, treatment)
	if err != nil {
		uc.Log.Error("treatmentUsecase.CreateTreatment error calling TreatmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return uc.TreatmentRepository.FindByID(ctx, treatmentID)
}

func (uc *treatmentUsecase) FindAllTreatments(ctx context.Context) ([]models.Treatment, error) {
	return uc.TreatmentRepository.FindAll(ctx)
}

func (uc *treatmentUsecase) FindTreatmentByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	treatment, err := uc.TreatmentRepository.FindByID(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "treatment")
	}
	return treatment, nil
}

func (uc *treatmentUsecase) UpdateTreatment(ctx context.Context, treatmentID string, request *requests.Treatment) (*models.Treatment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.UpdateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	treatment, err := uc.FindTreatmentByID(ctx, treatmentID)
	if err != nil {
		return nil, err
	}

	treatment.Code = strings.ToUpper(strings.TrimSpace(request.Code))
	treatment.Name = request.Name
	treatment.Price = request.Price
	if request.Active != nil {
		treatment.Active = *request.Active
	}

	err = uc.TreatmentRepository.Update(ctx, treatment)
	if err != nil {
		uc.Log.Error("treatmentUsecase.UpdateTreatment error calling TreatmentRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return treatment, nil
}

// DeleteTreatment removes the catalogue entry. Invoices keep their own copy
// of the description and price.
func (uc *treatmentUsecase) DeleteTreatment(ctx context.Context, treatmentID string) error {
	if _, err := uc.FindTreatmentByID(ctx, treatmentID); err != nil {
		return err
	}
	return uc.TreatmentRepository.Delete(ctx, treatmentID)
}
