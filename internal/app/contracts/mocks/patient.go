package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	var r0 *models.Patient
	if value, ok := args.Get(0).(*models.Patient); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Patient
	if value, ok := args.Get(0).([]models.Patient); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *PatientRepository) SoftDelete(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *PatientRepository) AddAttachment(ctx context.Context, patientID string, attachment *models.Attachment) error {
	args := m.Called(ctx, patientID, attachment)
	return args.Error(0)
}

func (m *PatientRepository) IncrementCredit(ctx context.Context, patientID primitive.ObjectID, amount int64) (int64, error) {
	args := m.Called(ctx, patientID, amount)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) CreatePatient(ctx context.Context, request *requests.Patient) (*models.Patient, error) {
	args := m.Called(ctx, request)
	var r0 *models.Patient
	if value, ok := args.Get(0).(*models.Patient); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *PatientUsecase) FindAllPatients(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Patient
	if value, ok := args.Get(0).([]models.Patient); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *PatientUsecase) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	var r0 *models.Patient
	if value, ok := args.Get(0).(*models.Patient); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *PatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patientID, request)
	var r0 *models.Patient
	if value, ok := args.Get(0).(*models.Patient); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *PatientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *PatientUsecase) UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error) {
	args := m.Called(ctx, request)
	var r0 *models.Attachment
	if value, ok := args.Get(0).(*models.Attachment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *PatientUsecase) GetAttachmentURL(ctx context.Context, patientID string, attachmentID string) (*responses.AttachmentURL, error) {
	args := m.Called(ctx, patientID, attachmentID)
	var r0 *responses.AttachmentURL
	if value, ok := args.Get(0).(*responses.AttachmentURL); ok {
		r0 = value
	}
	return r0, args.Error(1)
}
