package utils

import (
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"errors"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsValidToothNumber(t *testing.T) {
	valid := []int{0, 11, 18, 21, 38, 41, 48, 51, 55, 61, 75, 85}
	for _, number := range valid {
		assert.True(t, IsValidToothNumber(number), "tooth %d should be valid", number)
	}

	invalid := []int{-1, 9, 10, 19, 20, 49, 56, 86, 90, 100}
	for _, number := range invalid {
		assert.False(t, IsValidToothNumber(number), "tooth %d should be invalid", number)
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("Custom tags", func(t *testing.T) {
		request := requests.CreateUser{
			Email:     "dentist@clinic.test",
			FullName:  "Dr. Rivera",
			Password:  "Secret!Pass",
			Role:      constvars.RoleDentist,
			BranchIDs: []string{"not-an-object-id"},
		}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.FormatFirstValidationError(err), "must be a valid object ID")

		request.BranchIDs = []string{"6650f0a2c2a4b1e5f0a1b2c3"}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Password policy", func(t *testing.T) {
		request := requests.CreateUser{
			Email:    "staff@clinic.test",
			FullName: "Front Desk",
			Password: "weakpassword",
			Role:     constvars.RoleReceptionist,
		}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "password "+constvars.CustomValidationErrorMessages["password"], exceptions.FormatFirstValidationError(err))
	})

	t.Run("Field names follow json tags", func(t *testing.T) {
		err := ValidateStruct(requests.TransferStock{
			ProductID:    "6650f0a2c2a4b1e5f0a1b2c3",
			FromBranchID: "6650f0a2c2a4b1e5f0a1b2c4",
			ToBranchID:   "6650f0a2c2a4b1e5f0a1b2c5",
		})
		require.Error(t, err)
		assert.Equal(t, "quantity must be greater than 0", exceptions.FormatFirstValidationError(err))
	})
}

func TestBuildPaginationRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/patients?page=3&page_size=25", nil)
	assert.Equal(t, requests.Pagination{Page: 3, PageSize: 25}, BuildPaginationRequest(r))

	r = httptest.NewRequest("GET", "/patients?page=-1&page_size=abc", nil)
	assert.Equal(t, requests.Pagination{Page: 1, PageSize: 10}, BuildPaginationRequest(r))

	r = httptest.NewRequest("GET", "/patients?page_size=1000", nil)
	assert.Equal(t, constvars.AppMaxPageSize, BuildPaginationRequest(r).PageSize)
}

func TestBuildPaginationResponse(t *testing.T) {
	pagination := BuildPaginationResponse(25, 2, 10, "/v1/patients")
	assert.Equal(t, "/v1/patients?page=3&page_size=10", pagination.NextURL)
	assert.Equal(t, "/v1/patients?page=1&page_size=10", pagination.PrevURL)

	last := BuildPaginationResponse(20, 2, 10, "/v1/patients")
	assert.Empty(t, last.NextURL)
}

func TestBuildDateRangeRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/invoices?from=2024-03-01&to=2024-03-31", nil)
	dateRange, err := BuildDateRangeRequest(r)
	require.NoError(t, err)
	require.NotNil(t, dateRange.From)
	require.NotNil(t, dateRange.To)
	assert.Equal(t, 1, dateRange.From.Day())
	assert.Equal(t, 23, dateRange.To.Hour())

	r = httptest.NewRequest("GET", "/invoices?from=2024-03-01T08:00:00Z", nil)
	dateRange, err = BuildDateRangeRequest(r)
	require.NoError(t, err)
	assert.Equal(t, 8, dateRange.From.UTC().Hour())
	assert.Nil(t, dateRange.To)

	r = httptest.NewRequest("GET", "/invoices?from=yesterday", nil)
	_, err = BuildDateRangeRequest(r)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom error keeps status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrDocumentNotFound(nil, "invoice"))

		assert.Equal(t, constvars.StatusNotFound, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invoice not found", body["message"])
		assert.Equal(t, false, body["success"])
	})

	t.Run("Plain error becomes internal error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))
		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))

	expired, err := GenerateSessionJWT("session-2", "secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret!Pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("Secret!Pass", hash))
	assert.False(t, CheckPasswordHash("secret!pass", hash))
}

func TestGenerators(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
	assert.Regexp(t, regexp.MustCompile(`^P-20240517-[A-Z2-9]{6}$`), GeneratePatientFileNumber(now))
	assert.Regexp(t, regexp.MustCompile(`^INV-202405-[A-Z2-9]{6}$`), GenerateInvoiceNumber(now))
	assert.Regexp(t, regexp.MustCompile(`^patients/abc/[0-9a-f-]{36}\.png$`), GenerateAttachmentObjectKey("abc", "X-Ray.PNG"))
	assert.Contains(t, GenerateRequestID(), constvars.REQUEST_ID_PREFIX)
}

func TestSanitization(t *testing.T) {
	assert.Equal(t, "dr@clinic.test", NormalizeEmail("  DR@Clinic.TEST "))
	assert.Equal(t, `a\.b\*`, EscapeSearchTerm(" a.b* "))
	assert.Equal(t, []string{"penicillin", "latex"}, CleanStrings([]string{" penicillin ", "", "latex"}))
}
