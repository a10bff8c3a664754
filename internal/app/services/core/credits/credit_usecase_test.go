package credits

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
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

type creditFixture struct {
	creditRepo  *mocks.CreditRepository
	patientRepo *mocks.PatientRepository
	transactor  *mocks.Transactor
}

func newCreditFixture() *creditFixture {
	return &creditFixture{
		creditRepo:  new(mocks.CreditRepository),
		patientRepo: new(mocks.PatientRepository),
		transactor:  new(mocks.Transactor),
	}
}

func (f *creditFixture) usecase() *creditUsecase {
	return NewCreditUsecase(f.creditRepo, f.patientRepo, f.transactor, zap.NewNop()).(*creditUsecase)
}

func TestDeposit(t *testing.T) {
	f := newCreditFixture()
	patient := &models.Patient{ID: primitive.NewObjectID(), CreditBalance: 1000}
	f.patientRepo.On("FindByID", mock.Anything, patient.ID.Hex()).Return(patient, nil)
	f.patientRepo.On("IncrementCredit", mock.Anything, patient.ID, int64(500)).Return(int64(1500), nil)
	f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.CreditEntry) bool {
		return e.Type == constvars.CreditEntryDeposit && e.Amount == 500 && e.BalanceAfter == 1500 && e.CreatedBy == "system"
	})).Return(primitive.NewObjectID().Hex(), nil)

	entry, err := f.usecase().Deposit(context.Background(), patient.ID.Hex(), &requests.CreditMovement{Amount: 500, Note: "advance"})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), entry.BalanceAfter)
	assert.Equal(t, 1, f.transactor.Calls)
}

func TestWithdraw(t *testing.T) {
	patient := &models.Patient{ID: primitive.NewObjectID(), CreditBalance: 300}

	t.Run("Withdrawal is stored as a negative entry", func(t *testing.T) {
		f := newCreditFixture()
		f.patientRepo.On("FindByID", mock.Anything, patient.ID.Hex()).Return(patient, nil)
		f.patientRepo.On("IncrementCredit", mock.Anything, patient.ID, int64(-200)).Return(int64(100), nil)
		f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.CreditEntry) bool {
			return e.Type == constvars.CreditEntryWithdrawal && e.Amount == -200
		})).Return(primitive.NewObjectID().Hex(), nil)

		entry, err := f.usecase().Withdraw(context.Background(), patient.ID.Hex(), &requests.CreditMovement{Amount: 200})
		require.NoError(t, err)
		assert.Equal(t, int64(100), entry.BalanceAfter)
	})

	t.Run("Balance cannot go negative", func(t *testing.T) {
		f := newCreditFixture()
		f.patientRepo.On("FindByID", mock.Anything, patient.ID.Hex()).Return(patient, nil)
		f.patientRepo.On("IncrementCredit", mock.Anything, patient.ID, int64(-900)).Return(int64(0), exceptions.ErrInsufficientCredit(nil))

		_, err := f.usecase().Withdraw(context.Background(), patient.ID.Hex(), &requests.CreditMovement{Amount: 900})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		f.creditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestApplyMovementLinksInvoice(t *testing.T) {
	f := newCreditFixture()
	patientID := primitive.NewObjectID()
	invoiceID := primitive.NewObjectID()
	f.patientRepo.On("IncrementCredit", mock.Anything, patientID, int64(-250)).Return(int64(50), nil)
	f.creditRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.CreditEntry) bool {
		return e.InvoiceID != nil && *e.InvoiceID == invoiceID
	})).Return(primitive.NewObjectID().Hex(), nil)

	entry, err := f.usecase().ApplyMovement(context.Background(), contracts.CreditMovement{
		PatientID: patientID,
		Type:      constvars.CreditEntryApplied,
		Amount:    -250,
		InvoiceID: &invoiceID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), entry.BalanceAfter)
}

func TestGetCreditBalance(t *testing.T) {
	t.Run("Returns the stored balance", func(t *testing.T) {
		f := newCreditFixture()
		patient := &models.Patient{ID: primitive.NewObjectID(), CreditBalance: 4200}
		f.patientRepo.On("FindByID", mock.Anything, patient.ID.Hex()).Return(patient, nil)

		balance, err := f.usecase().GetCreditBalance(context.Background(), patient.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, int64(4200), balance.Balance)
	})

	t.Run("Unknown patient", func(t *testing.T) {
		f := newCreditFixture()
		id := primitive.NewObjectID().Hex()
		f.patientRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := f.usecase().GetCreditBalance(context.Background(), id)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	})
}
