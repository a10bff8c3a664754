package appointments

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentFixture struct {
	appointmentRepo *mocks.AppointmentRepository
	patientRepo     *mocks.PatientRepository
	userRepo        *mocks.UserRepository
	branchRepo      *mocks.BranchRepository
	notifications   *mocks.NotificationPublisher
	events          *mocks.EventPublisher
	now             time.Time
}

func newAppointmentFixture() *appointmentFixture {
	return &appointmentFixture{
		appointmentRepo: new(mocks.AppointmentRepository),
		patientRepo:     new(mocks.PatientRepository),
		userRepo:        new(mocks.UserRepository),
		branchRepo:      new(mocks.BranchRepository),
		notifications:   new(mocks.NotificationPublisher),
		events:          new(mocks.EventPublisher),
		now:             time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC),
	}
}

func (f *appointmentFixture) usecase() *appointmentUsecase {
	cfg := &config.InternalConfig{Notification: config.AppNotification{ReminderWindowInHours: 24}}
	uc := NewAppointmentUsecase(f.appointmentRepo, f.patientRepo, f.userRepo, f.branchRepo, f.notifications, f.events, cfg, zap.NewNop()).(*appointmentUsecase)
	uc.now = func() time.Time { return f.now }
	return uc
}

type appointmentRefs struct {
	patient *models.Patient
	branch  *models.Branch
	dentist *models.User
}

func newAppointmentRefs() *appointmentRefs {
	return &appointmentRefs{
		patient: &models.Patient{ID: primitive.NewObjectID(), FirstName: "Rina", LastName: "Putri", Email: "rina@example.com"},
		branch:  &models.Branch{ID: primitive.NewObjectID(), Name: "Central"},
		dentist: &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDentist, Active: true},
	}
}

func (r *appointmentRefs) request(start time.Time) *requests.Appointment {
	return &requests.Appointment{
		PatientID: r.patient.ID.Hex(),
		DentistID: r.dentist.ID.Hex(),
		BranchID:  r.branch.ID.Hex(),
		StartAt:   start,
		EndAt:     start.Add(30 * time.Minute),
		Reason:    "Check-up",
	}
}

func (f *appointmentFixture) expectRefs(r *appointmentRefs) {
	f.patientRepo.On("FindByID", mock.Anything, r.patient.ID.Hex()).Return(r.patient, nil)
	f.branchRepo.On("FindByID", mock.Anything, r.branch.ID.Hex()).Return(r.branch, nil)
	f.userRepo.On("FindByID", mock.Anything, r.dentist.ID.Hex()).Return(r.dentist, nil)
}

func TestCreateAppointment(t *testing.T) {
	start := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)

	t.Run("Scheduled when the dentist is free", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		f.expectRefs(refs)
		appointmentID := primitive.NewObjectID()
		f.appointmentRepo.On("FindOverlapping", mock.Anything, refs.dentist.ID, start, start.Add(30*time.Minute), primitive.NilObjectID).Return(nil, nil)
		f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusScheduled && a.DentistID == refs.dentist.ID
		})).Return(appointmentID.Hex(), nil)

		appointment, err := f.usecase().CreateAppointment(context.Background(), refs.request(start))
		require.NoError(t, err)
		assert.Equal(t, appointmentID, appointment.ID)
		assert.Equal(t, refs.branch.ID, appointment.BranchID)
	})

	t.Run("End before start is rejected", func(t *testing.T) {
		f := newAppointmentFixture()
		request := newAppointmentRefs().request(start)
		request.EndAt = start

		_, err := f.usecase().CreateAppointment(context.Background(), request)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Overlapping appointment is a conflict", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		f.expectRefs(refs)
		f.appointmentRepo.On("FindOverlapping", mock.Anything, refs.dentist.ID, mock.Anything, mock.Anything, mock.Anything).
			Return(&models.Appointment{ID: primitive.NewObjectID()}, nil)

		_, err := f.usecase().CreateAppointment(context.Background(), refs.request(start))
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Assigned user must be a dentist", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		refs.dentist.Role = constvars.RoleReceptionist
		f.expectRefs(refs)

		_, err := f.usecase().CreateAppointment(context.Background(), refs.request(start))
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Unknown patient", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		f.patientRepo.On("FindByID", mock.Anything, refs.patient.ID.Hex()).Return(nil, nil)

		_, err := f.usecase().CreateAppointment(context.Background(), refs.request(start))
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	})
}

func TestUpdateAppointment(t *testing.T) {
	start := time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)

	t.Run("Rescheduling clears the reminder", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		f.expectRefs(refs)
		sentAt := start.Add(-time.Hour)
		existing := &models.Appointment{
			ID:             primitive.NewObjectID(),
			Status:         constvars.AppointmentStatusConfirmed,
			StartAt:        start,
			EndAt:          start.Add(30 * time.Minute),
			ReminderSentAt: &sentAt,
		}
		newStart := start.Add(2 * time.Hour)
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("FindOverlapping", mock.Anything, refs.dentist.ID, newStart, newStart.Add(30*time.Minute), existing.ID).Return(nil, nil)
		f.appointmentRepo.On("Update", mock.Anything, existing, constvars.AppointmentStatusConfirmed).Return(nil)

		appointment, err := f.usecase().UpdateAppointment(context.Background(), existing.ID.Hex(), refs.request(newStart))
		require.NoError(t, err)
		assert.Nil(t, appointment.ReminderSentAt)
		assert.Equal(t, newStart, appointment.StartAt)
	})

	t.Run("Status changed since it was read", func(t *testing.T) {
		f := newAppointmentFixture()
		refs := newAppointmentRefs()
		f.expectRefs(refs)
		existing := &models.Appointment{
			ID:      primitive.NewObjectID(),
			Status:  constvars.AppointmentStatusScheduled,
			StartAt: start,
			EndAt:   start.Add(30 * time.Minute),
		}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("FindOverlapping", mock.Anything, refs.dentist.ID, start, start.Add(30*time.Minute), existing.ID).Return(nil, nil)
		f.appointmentRepo.On("Update", mock.Anything, existing, constvars.AppointmentStatusScheduled).
			Return(exceptions.ErrDocumentChanged(nil, "appointment"))

		_, err := f.usecase().UpdateAppointment(context.Background(), existing.ID.Hex(), refs.request(start))
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})

	t.Run("Completed appointment cannot be edited", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusCompleted}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)

		_, err := f.usecase().UpdateAppointment(context.Background(), existing.ID.Hex(), newAppointmentRefs().request(start))
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})
}

func TestChangeAppointmentStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		to         string
		wantStatus int
	}{
		{"Scheduled to confirmed", constvars.AppointmentStatusScheduled, constvars.AppointmentStatusConfirmed, 0},
		{"Confirmed to completed", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted, 0},
		{"Scheduled to cancelled", constvars.AppointmentStatusScheduled, constvars.AppointmentStatusCancelled, 0},
		{"Completed is final", constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled, constvars.StatusConflict},
		{"Cancelled is final", constvars.AppointmentStatusCancelled, constvars.AppointmentStatusScheduled, constvars.StatusConflict},
		{"Confirmed cannot go back", constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusScheduled, constvars.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture()
			existing := &models.Appointment{ID: primitive.NewObjectID(), Status: tt.from}
			f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
			f.appointmentRepo.On("Update", mock.Anything, existing, tt.from).Return(nil)
			f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.DomainEvent) bool {
				return e.Type == constvars.EventAppointmentStatusChanged && e.AggregateID == existing.ID.Hex()
			})).Return(nil)

			appointment, err := f.usecase().ChangeAppointmentStatus(context.Background(), existing.ID.Hex(), &requests.ChangeAppointmentStatus{
				Status:       tt.to,
				CancelReason: "patient request",
			})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, exceptions.StatusCode(err))
				f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, appointment.Status)
			if tt.to == constvars.AppointmentStatusCancelled {
				assert.Equal(t, "patient request", appointment.CancelReason)
			}
			f.events.AssertExpectations(t)
		})
	}

	t.Run("Event failure does not fail the change", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusScheduled}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("Update", mock.Anything, existing, constvars.AppointmentStatusScheduled).Return(nil)
		f.events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := f.usecase().ChangeAppointmentStatus(context.Background(), existing.ID.Hex(), &requests.ChangeAppointmentStatus{
			Status: constvars.AppointmentStatusConfirmed,
		})
		assert.NoError(t, err)
	})

	t.Run("Concurrent change keeps the stored status", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusScheduled}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("Update", mock.Anything, existing, constvars.AppointmentStatusScheduled).
			Return(exceptions.ErrDocumentChanged(nil, "appointment"))

		_, err := f.usecase().ChangeAppointmentStatus(context.Background(), existing.ID.Hex(), &requests.ChangeAppointmentStatus{
			Status: constvars.AppointmentStatusCompleted,
		})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("Scheduled appointment is deleted", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusScheduled}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("Delete", mock.Anything, existing.ID.Hex(), constvars.AppointmentStatusScheduled).Return(nil)

		assert.NoError(t, f.usecase().DeleteAppointment(context.Background(), existing.ID.Hex()))
	})

	t.Run("Confirmed before the delete landed", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusScheduled}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
		f.appointmentRepo.On("Delete", mock.Anything, existing.ID.Hex(), constvars.AppointmentStatusScheduled).
			Return(exceptions.ErrDocumentChanged(nil, "appointment"))

		err := f.usecase().DeleteAppointment(context.Background(), existing.ID.Hex())
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})

	t.Run("Confirmed appointment is kept", func(t *testing.T) {
		f := newAppointmentFixture()
		existing := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusConfirmed}
		f.appointmentRepo.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)

		err := f.usecase().DeleteAppointment(context.Background(), existing.ID.Hex())
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.appointmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		id := primitive.NewObjectID().Hex()
		f.appointmentRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		err := f.usecase().DeleteAppointment(context.Background(), id)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	})
}

func TestSendReminders(t *testing.T) {
	f := newAppointmentFixture()
	refs := newAppointmentRefs()
	withoutEmail := &models.Patient{ID: primitive.NewObjectID(), FirstName: "No", LastName: "Mail"}
	due := []models.Appointment{
		{ID: primitive.NewObjectID(), PatientID: refs.patient.ID, BranchID: refs.branch.ID, StartAt: f.now.Add(3 * time.Hour), Reason: "Scaling"},
		{ID: primitive.NewObjectID(), PatientID: withoutEmail.ID, BranchID: refs.branch.ID, StartAt: f.now.Add(5 * time.Hour)},
	}
	f.appointmentRepo.On("FindDueForReminder", mock.Anything, f.now, f.now.Add(24*time.Hour)).Return(due, nil)
	f.patientRepo.On("FindByID", mock.Anything, refs.patient.ID.Hex()).Return(refs.patient, nil)
	f.patientRepo.On("FindByID", mock.Anything, withoutEmail.ID.Hex()).Return(withoutEmail, nil)
	f.branchRepo.On("FindByID", mock.Anything, refs.branch.ID.Hex()).Return(refs.branch, nil).Once()
	f.notifications.On("Publish", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == constvars.NotificationTypeAppointmentReminder &&
			n.Recipient == "rina@example.com" &&
			strings.Contains(n.Body, "Rina Putri") &&
			strings.Contains(n.Body, "Central") &&
			strings.Contains(n.Body, "Scaling")
	})).Return(nil).Once()
	f.appointmentRepo.On("MarkReminderSent", mock.Anything, due[0].ID, f.now).Return(nil).Once()
	f.appointmentRepo.On("MarkReminderSent", mock.Anything, due[1].ID, f.now).Return(nil).Once()

	sent, err := f.usecase().SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.notifications.AssertExpectations(t)
	f.appointmentRepo.AssertExpectations(t)
}
