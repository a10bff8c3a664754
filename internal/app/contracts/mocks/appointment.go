package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *AppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindAll(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Appointment
	if value, ok := args.Get(0).([]models.Appointment); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment, expectedStatus string) error {
	args := m.Called(ctx, appointment, expectedStatus)
	return args.Error(0)
}

func (m *AppointmentRepository) Delete(ctx context.Context, appointmentID, expectedStatus string) error {
	args := m.Called(ctx, appointmentID, expectedStatus)
	return args.Error(0)
}

func (m *AppointmentRepository) FindOverlapping(ctx context.Context, dentistID primitive.ObjectID, startAt time.Time, endAt time.Time, excludeID primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, dentistID, startAt, endAt, excludeID)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentRepository) FindDueForReminder(ctx context.Context, from time.Time, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	var r0 []models.Appointment
	if value, ok := args.Get(0).([]models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentRepository) MarkReminderSent(ctx context.Context, appointmentID primitive.ObjectID, sentAt time.Time) error {
	args := m.Called(ctx, appointmentID, sentAt)
	return args.Error(0)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) FindAllAppointments(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Appointment
	if value, ok := args.Get(0).([]models.Appointment); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *AppointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) ChangeAppointmentStatus(ctx context.Context, appointmentID string, request *requests.ChangeAppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	var r0 *models.Appointment
	if value, ok := args.Get(0).(*models.Appointment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *AppointmentUsecase) SendReminders(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
