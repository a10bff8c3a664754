package invoices

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/events"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type invoiceUsecase struct {
	InvoiceRepository     contracts.InvoiceRepository
	PatientRepository     contracts.PatientRepository
	BranchRepository      contracts.BranchRepository
	TreatmentRepository   contracts.TreatmentRepository
	AppointmentRepository contracts.AppointmentRepository
	CreditUsecase         contracts.CreditUsecase
	Transactor            contracts.Transactor
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewInvoiceUsecase(
	invoiceRepository contracts.InvoiceRepository,
	patientRepository contracts.PatientRepository,
	branchRepository contracts.BranchRepository,
	treatmentRepository contracts.TreatmentRepository,
	appointmentRepository contracts.AppointmentRepository,
	creditUsecase contracts.CreditUsecase,
	transactor contracts.Transactor,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.InvoiceUsecase {
	return &invoiceUsecase{
		InvoiceRepository:     invoiceRepository,
		PatientRepository:     patientRepository,
		BranchRepository:      branchRepository,
		TreatmentRepository:   treatmentRepository,
		AppointmentRepository: appointmentRepository,
		CreditUsecase:         creditUsecase,
		Transactor:            transactor,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *invoiceUsecase) CreateInvoice(ctx context.Context, request *requests.CreateInvoice) (*models.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.CreateInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "patient")
	}

	branch, err := uc.BranchRepository.FindByID(ctx, request.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "branch")
	}

	appointmentID, err := utils.ToOptionalObjectID(request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointmentID != nil {
		appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrDocumentNotFound(nil, "appointment")
		}
	}

	items, err := uc.buildItems(ctx, request.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &models.Invoice{
		Number:        utils.GenerateInvoiceNumber(now),
		PatientID:     patient.ID,
		BranchID:      branch.ID,
		AppointmentID: appointmentID,
		Items:         items,
		Discount:      request.Discount,
		TaxRate:       request.TaxRate,
		Payments:      make([]models.Payment, 0),
		DueDate:       request.DueDate,
		Notes:         request.Notes,
		CreatedBy:     session.ActorFromContext(ctx),
	}
	invoice.CalculateTotals()
	if invoice.Discount > invoice.Subtotal {
		return nil, exceptions.ErrBadRequestRule(nil, constvars.ErrClientDiscountExceedsSubtotal)
	}
	invoice.SetCreatedAtUpdatedAt()

	invoiceID, err := uc.InvoiceRepository.Create(ctx, invoice)
	if err != nil {
		uc.Log.Error("invoiceUsecase.CreateInvoice error calling InvoiceRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	invoice.ID, _ = primitive.ObjectIDFromHex(invoiceID)

	events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
		constvars.EventInvoiceCreated,
		invoiceID,
		map[string]interface{}{
			"number":     invoice.Number,
			"patient_id": invoice.PatientID.Hex(),
			"branch_id":  invoice.BranchID.Hex(),
			"total":      invoice.Total,
		},
	))

	uc.Log.Info("invoiceUsecase.CreateInvoice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.Int64(constvars.LoggingAmountKey, invoice.Total),
	)
	return invoice, nil
}

func (uc *invoiceUsecase) FindAllInvoices(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	invoices, total, err := uc.InvoiceRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("invoiceUsecase.FindAllInvoices error calling InvoiceRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return invoices, total, nil
}

func (uc *invoiceUsecase) FindInvoiceByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "invoice")
	}
	return invoice, nil
}

// RecordPayment applies a payment up to the open balance. Any excess of a
// non-credit payment is kept as patient credit, and credit payments never
// draw more than the balance.
func (uc *invoiceUsecase) RecordPayment(ctx context.Context, invoiceID string, request *requests.RecordPayment) (*responses.PaymentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)

	var (
		invoice *models.Invoice
		result  *responses.PaymentResult
	)
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		invoice, err = uc.FindInvoiceByID(txCtx, invoiceID)
		if err != nil {
			return err
		}
		if !invoice.IsPayable() {
			return exceptions.ErrInvoiceNotPayable(nil, invoice.Status)
		}

		patient, err := uc.PatientRepository.FindByID(txCtx, invoice.PatientID.Hex())
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrDocumentNotFound(nil, "patient")
		}

		applied := request.Amount
		if applied > invoice.Balance {
			applied = invoice.Balance
		}
		excess := request.Amount - applied

		result = &responses.PaymentResult{
			InvoiceID:     invoiceID,
			AmountApplied: applied,
			CreditBalance: patient.CreditBalance,
		}

		if request.Method == constvars.PaymentMethodCredit {
			entry, err := uc.CreditUsecase.ApplyMovement(txCtx, contracts.CreditMovement{
				PatientID: invoice.PatientID,
				Type:      constvars.CreditEntryApplied,
				Amount:    -applied,
				InvoiceID: &invoice.ID,
				Note:      invoice.Number,
			})
			if err != nil {
				return err
			}
			result.CreditUsed = applied
			result.CreditBalance = entry.BalanceAfter
		} else if excess > 0 {
			entry, err := uc.CreditUsecase.ApplyMovement(txCtx, contracts.CreditMovement{
				PatientID: invoice.PatientID,
				Type:      constvars.CreditEntryOverpayment,
				Amount:    excess,
				InvoiceID: &invoice.ID,
				Note:      invoice.Number,
			})
			if err != nil {
				return err
			}
			result.CreditDeposited = excess
			result.CreditBalance = entry.BalanceAfter
		}

		invoice.Payments = append(invoice.Payments, models.Payment{
			ID:         primitive.NewObjectID(),
			Amount:     applied,
			Method:     request.Method,
			Reference:  request.Reference,
			PaidAt:     time.Now(),
			ReceivedBy: session.ActorFromContext(txCtx),
		})
		invoice.AmountPaid += applied
		invoice.RefreshStatus()

		err = uc.InvoiceRepository.Update(txCtx, invoice)
		if err != nil {
			return err
		}
		result.Status = invoice.Status
		result.Balance = invoice.Balance
		return nil
	})
	if err != nil {
		uc.Log.Error("invoiceUsecase.RecordPayment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.Error(err),
		)
		return nil, err
	}

	events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
		constvars.EventInvoicePaymentRecorded,
		invoiceID,
		map[string]interface{}{
			"method":           request.Method,
			"amount_applied":   result.AmountApplied,
			"credit_deposited": result.CreditDeposited,
			"balance":          result.Balance,
		},
	))
	if invoice.Status == constvars.InvoiceStatusPaid {
		events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
			constvars.EventInvoicePaid,
			invoiceID,
			map[string]interface{}{
				"number":     invoice.Number,
				"patient_id": invoice.PatientID.Hex(),
				"total":      invoice.Total,
			},
		))
	}

	uc.Log.Info("invoiceUsecase.RecordPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.String(constvars.LoggingStatusKey, result.Status),
	)
	return result, nil
}

// CancelInvoice returns everything already paid to the patient credit.
func (uc *invoiceUsecase) CancelInvoice(ctx context.Context, invoiceID string, request *requests.CancelInvoice) (*models.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("invoiceUsecase.CancelInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)

	var invoice *models.Invoice
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		invoice, err = uc.FindInvoiceByID(txCtx, invoiceID)
		if err != nil {
			return err
		}
		if invoice.Status == constvars.InvoiceStatusCancelled {
			return exceptions.ErrConflictRule(nil, constvars.ErrClientInvoiceNotCancellable)
		}

		if invoice.AmountPaid > 0 {
			_, err = uc.CreditUsecase.ApplyMovement(txCtx, contracts.CreditMovement{
				PatientID: invoice.PatientID,
				Type:      constvars.CreditEntryRefund,
				Amount:    invoice.AmountPaid,
				InvoiceID: &invoice.ID,
				Note:      invoice.Number,
			})
			if err != nil {
				return err
			}
		}

		invoice.Status = constvars.InvoiceStatusCancelled
		invoice.CancelReason = request.Reason
		invoice.Balance = 0
		return uc.InvoiceRepository.Update(txCtx, invoice)
	})
	if err != nil {
		uc.Log.Error("invoiceUsecase.CancelInvoice error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.Error(err),
		)
		return nil, err
	}

	events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
		constvars.EventInvoiceCancelled,
		invoiceID,
		map[string]interface{}{
			"number":   invoice.Number,
			"refunded": invoice.AmountPaid,
		},
	))
	return invoice, nil
}

func (uc *invoiceUsecase) buildItems(ctx context.Context, requestItems []requests.InvoiceItem) ([]models.InvoiceItem, error) {
	items := make([]models.InvoiceItem, 0, len(requestItems))
	for _, requestItem := range requestItems {
		item := models.InvoiceItem{
			Description: requestItem.Description,
			Quantity:    requestItem.Quantity,
		}

		if requestItem.TreatmentID != "" {
			treatment, err := uc.TreatmentRepository.FindByID(ctx, requestItem.TreatmentID)
			if err != nil {
				return nil, err
			}
			if treatment == nil {
				return nil, exceptions.ErrDocumentNotFound(nil, "treatment")
			}
			item.TreatmentID = &treatment.ID
			item.UnitPrice = treatment.Price
			if item.Description == "" {
				item.Description = treatment.Name
			}
		} else if requestItem.UnitPrice == nil {
			return nil, exceptions.ErrBadRequestRule(nil, constvars.ErrClientTreatmentPriceMissing)
		}

		if requestItem.UnitPrice != nil {
			item.UnitPrice = *requestItem.UnitPrice
		}
		items = append(items, item)
	}
	return items, nil
}
