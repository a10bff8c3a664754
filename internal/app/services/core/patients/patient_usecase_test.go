package patients

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientFixture struct {
	patientRepo *mocks.PatientRepository
	branchRepo  *mocks.BranchRepository
	storage     *mocks.AttachmentStorage
}

func newPatientFixture() *patientFixture {
	return &patientFixture{
		patientRepo: new(mocks.PatientRepository),
		branchRepo:  new(mocks.BranchRepository),
		storage:     new(mocks.AttachmentStorage),
	}
}

func (f *patientFixture) usecase() *patientUsecase {
	internalConfig := &config.InternalConfig{
		Attachment: config.AppAttachment{
			MaxUploadSizeInMB:           1,
			AllowedContentTypes:         []string{constvars.MIMEImageJPEG, constvars.MIMEApplicationPDF},
			PresignedURLExpiryInMinutes: 15,
		},
	}
	return NewPatientUsecase(f.patientRepo, f.branchRepo, f.storage, internalConfig, zap.NewNop()).(*patientUsecase)
}

func TestCreatePatient(t *testing.T) {
	branchID := primitive.NewObjectID()
	request := &requests.Patient{
		FirstName: " Ana ",
		LastName:  "Lopez",
		BirthDate: "1990-04-12",
		Email:     "Ana@Mail.test",
		BranchID:  branchID.Hex(),
		Allergies: []string{" penicillin ", ""},
	}

	t.Run("Patient gets a file number and zero credit", func(t *testing.T) {
		f := newPatientFixture()
		patientID := primitive.NewObjectID()
		f.branchRepo.On("FindByID", mock.Anything, branchID.Hex()).Return(&models.Branch{ID: branchID}, nil)
		f.patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
			return strings.HasPrefix(p.FileNumber, "P-") &&
				p.FirstName == "Ana" &&
				p.Email == "ana@mail.test" &&
				p.CreditBalance == 0 &&
				p.BirthDate != nil && p.BirthDate.Year() == 1990 &&
				assert.ObjectsAreEqual([]string{"penicillin"}, p.Allergies)
		})).Return(patientID.Hex(), nil)

		patient, err := f.usecase().CreatePatient(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, patientID, patient.ID)
		assert.Equal(t, branchID, patient.BranchID)
	})

	t.Run("Unknown branch is not found", func(t *testing.T) {
		f := newPatientFixture()
		f.branchRepo.On("FindByID", mock.Anything, branchID.Hex()).Return(nil, nil)

		_, err := f.usecase().CreatePatient(context.Background(), request)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
		f.patientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDeletePatient(t *testing.T) {
	f := newPatientFixture()
	patientID := primitive.NewObjectID().Hex()
	f.patientRepo.On("FindByID", mock.Anything, patientID).Return(&models.Patient{}, nil)
	f.patientRepo.On("SoftDelete", mock.Anything, patientID).Return(nil)

	require.NoError(t, f.usecase().DeletePatient(context.Background(), patientID))
	f.patientRepo.AssertExpectations(t)
}

func TestUploadAttachment(t *testing.T) {
	patientID := primitive.NewObjectID().Hex()
	ctx := session.WithSession(context.Background(), &models.Session{UserID: "dentist-1"})

	t.Run("File is stored and linked to the patient", func(t *testing.T) {
		f := newPatientFixture()
		f.patientRepo.On("FindByID", mock.Anything, patientID).Return(&models.Patient{}, nil)
		f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "patients/"+patientID+"/") && strings.HasSuffix(key, ".jpg")
		}), mock.Anything, int64(2048), constvars.MIMEImageJPEG).Return(nil)
		f.patientRepo.On("AddAttachment", mock.Anything, patientID, mock.AnythingOfType("*models.Attachment")).Return(nil)

		attachment, err := f.usecase().UploadAttachment(ctx, &requests.UploadAttachment{
			PatientID:   patientID,
			FileName:    "xray.JPG",
			ContentType: constvars.MIMEImageJPEG,
			Size:        2048,
			File:        strings.NewReader("image"),
		})
		require.NoError(t, err)
		assert.Equal(t, "dentist-1", attachment.UploadedBy)
		f.storage.AssertExpectations(t)
	})

	t.Run("Oversized file is rejected", func(t *testing.T) {
		f := newPatientFixture()

		_, err := f.usecase().UploadAttachment(ctx, &requests.UploadAttachment{
			PatientID:   patientID,
			ContentType: constvars.MIMEImageJPEG,
			Size:        2 * bytesInMegabyte,
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Disallowed content type is rejected", func(t *testing.T) {
		f := newPatientFixture()

		_, err := f.usecase().UploadAttachment(ctx, &requests.UploadAttachment{
			PatientID:   patientID,
			ContentType: "application/x-msdownload",
			Size:        100,
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})
}

func TestGetAttachmentURL(t *testing.T) {
	patientID := primitive.NewObjectID().Hex()
	attachmentID := primitive.NewObjectID()

	f := newPatientFixture()
	f.patientRepo.On("FindByID", mock.Anything, patientID).Return(&models.Patient{
		Attachments: []models.Attachment{{ID: attachmentID, FileName: "xray.jpg", ObjectKey: "patients/p/x.jpg"}},
	}, nil)
	f.storage.On("PresignedURL", mock.Anything, "patients/p/x.jpg", 15*time.Minute).Return("https://minio.test/x.jpg?sig", nil)

	url, err := f.usecase().GetAttachmentURL(context.Background(), patientID, attachmentID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "https://minio.test/x.jpg?sig", url.URL)
	assert.Equal(t, "xray.jpg", url.FileName)

	_, err = f.usecase().GetAttachmentURL(context.Background(), patientID, primitive.NewObjectID().Hex())
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}
