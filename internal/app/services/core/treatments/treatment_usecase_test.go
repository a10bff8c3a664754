package treatments

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreateTreatment(t *testing.T) {
	t.Run("New procedure is active by default", func(t *testing.T) {
		repo := new(mocks.TreatmentRepository)
		id := primitive.NewObjectID()
		repo.On("FindByCode", mock.Anything, "SCL").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *models.Treatment) bool {
			return tr.Code == "SCL" && tr.Active && tr.Price == 45000
		})).Return(id.Hex(), nil)
		repo.On("FindByID", mock.Anything, id.Hex()).Return(&models.Treatment{ID: id, Code: "SCL"}, nil)

		treatment, err := NewTreatmentUsecase(repo, zap.NewNop()).CreateTreatment(context.Background(), &requests.Treatment{
			Code:  " scl ",
			Name:  "Scaling",
			Price: 45000,
		})
		require.NoError(t, err)
		assert.Equal(t, id, treatment.ID)
	})

	t.Run("Duplicate code is a conflict", func(t *testing.T) {
		repo := new(mocks.TreatmentRepository)
		repo.On("FindByCode", mock.Anything, "SCL").Return(&models.Treatment{}, nil)

		_, err := NewTreatmentUsecase(repo, zap.NewNop()).CreateTreatment(context.Background(), &requests.Treatment{Code: "SCL"})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})
}

func TestDeleteTreatment(t *testing.T) {
	repo := new(mocks.TreatmentRepository)
	id := primitive.NewObjectID().Hex()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := NewTreatmentUsecase(repo, zap.NewNop()).DeleteTreatment(context.Background(), id)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
