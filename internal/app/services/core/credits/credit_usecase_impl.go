package credits

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type creditUsecase struct {
	CreditRepository  contracts.CreditRepository
	PatientRepository contracts.PatientRepository
	Transactor        contracts.Transactor
	Log               *zap.Logger
}

func NewCreditUsecase(
	creditRepository contracts.CreditRepository,
	patientRepository contracts.PatientRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.CreditUsecase {
	return &creditUsecase{
		CreditRepository:  creditRepository,
		PatientRepository: patientRepository,
		Transactor:        transactor,
		Log:               logger,
	}
}

func (uc *creditUsecase) Deposit(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error) {
	return uc.manualMovement(ctx, patientID, constvars.CreditEntryDeposit, request.Amount, request.Note)
}

func (uc *creditUsecase) Withdraw(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error) {
	return uc.manualMovement(ctx, patientID, constvars.CreditEntryWithdrawal, -request.Amount, request.Note)
}

func (uc *creditUsecase) FindCreditHistory(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error) {
	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return nil, 0, err
	}
	return uc.CreditRepository.FindAllByPatient(ctx, patientID, pagination)
}

func (uc *creditUsecase) GetCreditBalance(ctx context.Context, patientID string) (*responses.CreditBalance, error) {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &responses.CreditBalance{
		PatientID: patientID,
		Balance:   patient.CreditBalance,
	}, nil
}

func (uc *creditUsecase) ApplyMovement(ctx context.Context, movement contracts.CreditMovement) (*models.CreditEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	balance, err := uc.PatientRepository.IncrementCredit(ctx, movement.PatientID, movement.Amount)
	if err != nil {
		uc.Log.Error("creditUsecase.ApplyMovement error calling PatientRepository.IncrementCredit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, movement.PatientID.Hex()),
			zap.Int64(constvars.LoggingAmountKey, movement.Amount),
			zap.Error(err),
		)
		return nil, err
	}

	entry := &models.CreditEntry{
		PatientID:    movement.PatientID,
		Type:         movement.Type,
		Amount:       movement.Amount,
		BalanceAfter: balance,
		InvoiceID:    movement.InvoiceID,
		Note:         movement.Note,
		CreatedBy:    session.ActorFromContext(ctx),
		CreatedAt:    time.Now(),
	}
	entryID, err := uc.CreditRepository.Create(ctx, entry)
	if err != nil {
		uc.Log.Error("creditUsecase.ApplyMovement error calling CreditRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	entry.ID, _ = primitive.ObjectIDFromHex(entryID)
	return entry, nil
}

func (uc *creditUsecase) manualMovement(ctx context.Context, patientID, entryType string, amount int64, note string) (*models.CreditEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("creditUsecase.manualMovement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingAmountKey, amount),
	)

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var entry *models.CreditEntry
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = uc.ApplyMovement(txCtx, contracts.CreditMovement{
			PatientID: patient.ID,
			Type:      entryType,
			Amount:    amount,
			Note:      note,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("creditUsecase.manualMovement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingAmountKey, entry.BalanceAfter),
	)
	return entry, nil
}

func (uc *creditUsecase) findPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "patient")
	}
	return patient, nil
}
