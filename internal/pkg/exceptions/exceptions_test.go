package exceptions

import (
	"dental-clinic-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("wraps plain error with dev message", func(t *testing.T) {
		err := ErrMongoDBFindDocument(errors.New("connection reset"))

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Contains(t, err.DevMessage, "connection reset")
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].File, "exceptions_test.go")
	})

	t.Run("keeps classification of an existing custom error", func(t *testing.T) {
		notFound := ErrDocumentNotFound(nil, "patient")
		wrapped := ErrServerProcess(notFound)

		assert.Equal(t, constvars.StatusNotFound, wrapped.StatusCode)
		assert.Equal(t, "patient not found", wrapped.ClientMessage)
		assert.Len(t, wrapped.Locations, 2)
	})

	t.Run("keeps driver error labels reachable", func(t *testing.T) {
		driverErr := mongo.CommandError{Code: 112, Name: "WriteConflict", Labels: []string{"TransientTransactionError"}}
		wrapped := ErrMongoDBUpdateDocument(driverErr)

		var labeled mongo.LabeledError
		require.True(t, errors.As(wrapped, &labeled))
		assert.True(t, labeled.HasErrorLabel("TransientTransactionError"))

		var customErr *CustomError
		require.True(t, errors.As(ErrServerProcess(wrapped), &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("status code helper", func(t *testing.T) {
		assert.Equal(t, constvars.StatusConflict, StatusCode(ErrWithdrawalNotPending(nil)))
		assert.Equal(t, constvars.StatusInternalServerError, StatusCode(errors.New("boom")))
	})
}

type sampleInput struct {
	Status   string `validate:"required,oneof=scheduled confirmed"`
	Quantity int    `validate:"gt=0"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(sampleInput{Status: "unknown", Quantity: 1})
	assert.Equal(t, "status must be one of [scheduled, confirmed]", FormatFirstValidationError(err))

	err = validate.Struct(sampleInput{Status: "scheduled", Quantity: 0})
	assert.Equal(t, "quantity must be greater than 0", FormatFirstValidationError(err))

	err = validate.Struct(sampleInput{})
	assert.Equal(t, "status is required, quantity must be greater than 0", FormatAllValidationErrors(err))

	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("other")))
}
