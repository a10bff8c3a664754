package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error)
	// Update and Delete only touch the document while its stored status
	// still equals expectedStatus.
	Update(ctx context.Context, appointment *models.Appointment, expectedStatus string) error
	Delete(ctx context.Context, appointmentID, expectedStatus string) error
	// FindOverlapping returns a non-cancelled appointment of the dentist that
	// intersects [startAt, endAt), ignoring excludeID.
	FindOverlapping(ctx context.Context, dentistID primitive.ObjectID, startAt, endAt time.Time, excludeID primitive.ObjectID) (*models.Appointment, error)
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	MarkReminderSent(ctx context.Context, appointmentID primitive.ObjectID, sentAt time.Time) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error)
	FindAllAppointments(ctx context.Context, request *requests.FindAllAppointments) ([]models.Appointment, int, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error)
	ChangeAppointmentStatus(ctx context.Context, appointmentID string, request *requests.ChangeAppointmentStatus) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	SendReminders(ctx context.Context) (int, error)
}
