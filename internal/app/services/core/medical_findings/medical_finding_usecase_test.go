package medical_findings

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type findingFixture struct {
	findingRepo *mocks.MedicalFindingRepository
	patientRepo *mocks.PatientRepository
	userRepo    *mocks.UserRepository
}

func newFindingFixture() *findingFixture {
	return &findingFixture{
		findingRepo: new(mocks.MedicalFindingRepository),
		patientRepo: new(mocks.PatientRepository),
		userRepo:    new(mocks.UserRepository),
	}
}

func (f *findingFixture) usecase() *medicalFindingUsecase {
	return NewMedicalFindingUsecase(f.findingRepo, f.patientRepo, f.userRepo, zap.NewNop()).(*medicalFindingUsecase)
}

func TestCreateFinding(t *testing.T) {
	patientID := primitive.NewObjectID()
	dentist := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleDentist, Active: true}
	ctx := session.WithSession(context.Background(), &models.Session{UserID: dentist.ID.Hex(), Role: constvars.RoleDentist})

	t.Run("Dentist defaults to the logged in user", func(t *testing.T) {
		f := newFindingFixture()
		findingID := primitive.NewObjectID()
		f.patientRepo.On("FindByID", mock.Anything, patientID.Hex()).Return(&models.Patient{ID: patientID}, nil)
		f.userRepo.On("FindByID", mock.Anything, dentist.ID.Hex()).Return(dentist, nil)
		f.findingRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.MedicalFinding) bool {
			return m.DentistID == dentist.ID && m.ToothNumber == 36 && !m.RecordedAt.IsZero()
		})).Return(findingID.Hex(), nil)

		finding, err := f.usecase().CreateFinding(ctx, &requests.MedicalFinding{
			PatientID:   patientID.Hex(),
			ToothNumber: 36,
			Type:        constvars.FindingTypeCaries,
			Diagnosis:   "Occlusal caries",
		})
		require.NoError(t, err)
		assert.Equal(t, findingID, finding.ID)
		assert.Equal(t, patientID, finding.PatientID)
	})

	t.Run("Invalid tooth number is rejected", func(t *testing.T) {
		f := newFindingFixture()

		_, err := f.usecase().CreateFinding(ctx, &requests.MedicalFinding{PatientID: patientID.Hex(), ToothNumber: 19})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Non dentist cannot be recorded as author", func(t *testing.T) {
		f := newFindingFixture()
		receptionist := &models.User{ID: primitive.NewObjectID(), Role: constvars.RoleReceptionist, Active: true}
		f.patientRepo.On("FindByID", mock.Anything, patientID.Hex()).Return(&models.Patient{ID: patientID}, nil)
		f.userRepo.On("FindByID", mock.Anything, receptionist.ID.Hex()).Return(receptionist, nil)

		_, err := f.usecase().CreateFinding(ctx, &requests.MedicalFinding{
			PatientID:   patientID.Hex(),
			DentistID:   receptionist.ID.Hex(),
			ToothNumber: 11,
			Type:        constvars.FindingTypeCrown,
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		f.findingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetDentalChart(t *testing.T) {
	f := newFindingFixture()
	patientID := primitive.NewObjectID().Hex()
	now := time.Now()
	newest := primitive.NewObjectID()
	f.patientRepo.On("FindByID", mock.Anything, patientID).Return(&models.Patient{}, nil)
	f.findingRepo.On("FindAllByPatient", mock.Anything, patientID).Return([]models.MedicalFinding{
		{ID: primitive.NewObjectID(), ToothNumber: 46, Type: constvars.FindingTypeCaries, RecordedAt: now.Add(-48 * time.Hour)},
		{ID: newest, ToothNumber: 46, Type: constvars.FindingTypeFilling, RecordedAt: now},
		{ID: primitive.NewObjectID(), ToothNumber: 11, Type: constvars.FindingTypeCrown, RecordedAt: now.Add(-time.Hour)},
		{ID: primitive.NewObjectID(), ToothNumber: 0, Type: constvars.FindingTypePeriodontal, RecordedAt: now.Add(-time.Hour)},
	}, nil)

	chart, err := f.usecase().GetDentalChart(context.Background(), patientID)
	require.NoError(t, err)
	require.Len(t, chart.Teeth, 3)
	assert.Equal(t, 0, chart.Teeth[0].ToothNumber)
	assert.Equal(t, 11, chart.Teeth[1].ToothNumber)
	assert.Equal(t, 46, chart.Teeth[2].ToothNumber)
	assert.Equal(t, constvars.FindingTypeFilling, chart.Teeth[2].Type)
	assert.Equal(t, newest.Hex(), chart.Teeth[2].FindingID)
}

func TestFindFindingsByPatientUnknownPatient(t *testing.T) {
	f := newFindingFixture()
	patientID := primitive.NewObjectID().Hex()
	f.patientRepo.On("FindByID", mock.Anything, patientID).Return(nil, nil)

	_, err := f.usecase().FindFindingsByPatient(context.Background(), patientID)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}
