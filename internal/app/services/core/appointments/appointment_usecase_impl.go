package appointments

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/events"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const reminderTimeLayout = "Monday, 02 January 2006 15:04"

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	UserRepository        contracts.UserRepository
	BranchRepository      contracts.BranchRepository
	NotificationPublisher contracts.NotificationPublisher
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	branchRepository contracts.BranchRepository,
	notificationPublisher contracts.NotificationPublisher,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		UserRepository:        userRepository,
		BranchRepository:      branchRepository,
		NotificationPublisher: notificationPublisher,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	appointment := &models.Appointment{Status: constvars.AppointmentStatusScheduled}
	err := uc.applyRequest(ctx, appointment, request)
	if err != nil {
		return nil, err
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AppointmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID, _ = primitive.ObjectIDFromHex(appointmentID)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) FindAllAppointments(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, request)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAllAppointments error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return appointments, total, nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "appointment")
	}
	return appointment, nil
}

// UpdateAppointment reschedules or edits an appointment that is still open.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, exceptions.ErrConflictRule(nil, constvars.ErrClientAppointmentNotEditable)
	}

	previousStart, previousEnd := appointment.StartAt, appointment.EndAt
	err = uc.applyRequest(ctx, appointment, request)
	if err != nil {
		return nil, err
	}
	if !appointment.StartAt.Equal(previousStart) || !appointment.EndAt.Equal(previousEnd) {
		appointment.ReminderSentAt = nil
	}

	err = uc.AppointmentRepository.Update(ctx, appointment, appointment.Status)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error calling AppointmentRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) ChangeAppointmentStatus(ctx context.Context, appointmentID string, request *requests.ChangeAppointmentStatus) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ChangeAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrAppointmentInvalidTransition(nil, appointment.Status, request.Status)
	}

	previousStatus := appointment.Status
	appointment.Status = request.Status
	if request.Status == constvars.AppointmentStatusCancelled {
		appointment.CancelReason = request.CancelReason
	}

	err = uc.AppointmentRepository.Update(ctx, appointment, previousStatus)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ChangeAppointmentStatus error calling AppointmentRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
		constvars.EventAppointmentStatusChanged,
		appointment.ID.Hex(),
		map[string]interface{}{
			"from":       previousStatus,
			"to":         appointment.Status,
			"patient_id": appointment.PatientID.Hex(),
			"dentist_id": appointment.DentistID.Hex(),
			"branch_id":  appointment.BranchID.Hex(),
		},
	))

	uc.Log.Info("appointmentUsecase.ChangeAppointmentStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, appointment.Status),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status != constvars.AppointmentStatusScheduled {
		return exceptions.ErrConflictRule(nil, constvars.ErrClientAppointmentNotDeletable)
	}
	return uc.AppointmentRepository.Delete(ctx, appointmentID, appointment.Status)
}

// SendReminders queues a reminder for every open appointment starting inside
// the configured window and returns how many were queued. Appointments whose
// patient has no e-mail are marked without a message.
func (uc *appointmentUsecase) SendReminders(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.now()
	window := time.Duration(uc.InternalConfig.Notification.ReminderWindowInHours) * time.Hour

	appointments, err := uc.AppointmentRepository.FindDueForReminder(ctx, now, now.Add(window))
	if err != nil {
		uc.Log.Error("appointmentUsecase.SendReminders error calling AppointmentRepository.FindDueForReminder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	branchNames := make(map[primitive.ObjectID]string)
	sent := 0
	for _, appointment := range appointments {
		patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID.Hex())
		if err != nil {
			return sent, err
		}
		if patient == nil || patient.Email == "" {
			uc.Log.Warn("appointmentUsecase.SendReminders patient has no email",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			)
			// marked as handled so later runs do not pick it up again
			err = uc.AppointmentRepository.MarkReminderSent(ctx, appointment.ID, now)
			if err != nil {
				return sent, err
			}
			continue
		}

		branchName, ok := branchNames[appointment.BranchID]
		if !ok {
			branch, err := uc.BranchRepository.FindByID(ctx, appointment.BranchID.Hex())
			if err != nil {
				return sent, err
			}
			if branch != nil {
				branchName = branch.Name
			}
			branchNames[appointment.BranchID] = branchName
		}

		notification := &models.Notification{
			Type:      constvars.NotificationTypeAppointmentReminder,
			Recipient: patient.Email,
			Subject:   constvars.EmailSubjectAppointmentReminder,
			Body: fmt.Sprintf(constvars.EmailBodyAppointmentReminder,
				patient.FullName(),
				branchName,
				appointment.StartAt.Format(reminderTimeLayout),
				appointment.Reason,
			),
			Metadata: map[string]string{
				constvars.LoggingAppointmentIDKey: appointment.ID.Hex(),
			},
			CreatedAt: now,
		}
		err = uc.NotificationPublisher.Publish(ctx, notification)
		if err != nil {
			uc.Log.Error("appointmentUsecase.SendReminders error calling NotificationPublisher.Publish",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
				zap.Error(err),
			)
			return sent, err
		}

		err = uc.AppointmentRepository.MarkReminderSent(ctx, appointment.ID, now)
		if err != nil {
			return sent, err
		}
		sent++
	}

	uc.Log.Info("appointmentUsecase.SendReminders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, sent),
	)
	return sent, nil
}

func (uc *appointmentUsecase) applyRequest(ctx context.Context, appointment *models.Appointment, request *requests.Appointment) error {
	if !request.EndAt.After(request.StartAt) {
		return exceptions.ErrBadRequestRule(nil, constvars.ErrClientInvalidTimeRange)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrDocumentNotFound(nil, "patient")
	}

	branch, err := uc.BranchRepository.FindByID(ctx, request.BranchID)
	if err != nil {
		return err
	}
	if branch == nil {
		return exceptions.ErrDocumentNotFound(nil, "branch")
	}

	dentist, err := uc.UserRepository.FindByID(ctx, request.DentistID)
	if err != nil {
		return err
	}
	if dentist == nil {
		return exceptions.ErrDocumentNotFound(nil, "dentist")
	}
	if dentist.Role != constvars.RoleDentist || !dentist.Active {
		return exceptions.ErrBadRequestRule(nil, constvars.ErrClientNotDentist)
	}

	overlap, err := uc.AppointmentRepository.FindOverlapping(ctx, dentist.ID, request.StartAt, request.EndAt, appointment.ID)
	if err != nil {
		return err
	}
	if overlap != nil {
		return exceptions.ErrAppointmentOverlap(nil)
	}

	appointment.PatientID = patient.ID
	appointment.DentistID = dentist.ID
	appointment.BranchID = branch.ID
	appointment.StartAt = request.StartAt
	appointment.EndAt = request.EndAt
	appointment.Reason = request.Reason
	appointment.Notes = request.Notes
	return nil
}
