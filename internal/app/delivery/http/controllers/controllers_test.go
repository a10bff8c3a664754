package controllers

import (
	"bytes"
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	routeContext := chi.NewRouteContext()
	for key, value := range params {
		routeContext.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeContext))
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return req
}

func TestPatientController_CreatePatient(t *testing.T) {
	branchID := primitive.NewObjectID()

	t.Run("Created", func(t *testing.T) {
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}
		usecase.On("CreatePatient", mock.Anything, mock.MatchedBy(func(request *requests.Patient) bool {
			return request.FirstName == "Ana" && request.BranchID == branchID.Hex()
		})).Return(&models.Patient{ID: primitive.NewObjectID(), FirstName: "Ana", LastName: "Kovac", BranchID: branchID}, nil)

		body := `{"first_name":"Ana","last_name":"Kovac","branch_id":"` + branchID.Hex() + `"}`
		rec := httptest.NewRecorder()
		ctrl.CreatePatient(rec, jsonRequest(http.MethodPost, "/v1/patients", body))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "success").Bool())
		assert.Equal(t, "Ana", gjson.Get(rec.Body.String(), "data.first_name").String())
		usecase.AssertExpectations(t)
	})

	t.Run("Validation error never reaches the usecase", func(t *testing.T) {
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}

		rec := httptest.NewRecorder()
		ctrl.CreatePatient(rec, jsonRequest(http.MethodPost, "/v1/patients", `{"first_name":"Ana"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})

	t.Run("Malformed json", func(t *testing.T) {
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: new(mocks.PatientUsecase)}

		rec := httptest.NewRecorder()
		ctrl.CreatePatient(rec, jsonRequest(http.MethodPost, "/v1/patients", `{"first_name":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPatientController_FindPatientByID(t *testing.T) {
	t.Run("Invalid id", func(t *testing.T) {
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/v1/patients/abc", nil), map[string]string{constvars.URLParamPatientID: "abc"})
		rec := httptest.NewRecorder()
		ctrl.FindPatientByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "FindPatientByID", mock.Anything, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		patientID := primitive.NewObjectID().Hex()
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}
		usecase.On("FindPatientByID", mock.Anything, patientID).Return(nil, exceptions.ErrDocumentNotFound(nil, "patient"))

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/v1/patients/"+patientID, nil), map[string]string{constvars.URLParamPatientID: patientID})
		rec := httptest.NewRecorder()
		ctrl.FindPatientByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, gjson.Get(rec.Body.String(), "success").Bool())
	})

	t.Run("Deadline exceeded", func(t *testing.T) {
		patientID := primitive.NewObjectID().Hex()
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}
		usecase.On("FindPatientByID", mock.Anything, patientID).Return(nil, context.DeadlineExceeded)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/v1/patients/"+patientID, nil), map[string]string{constvars.URLParamPatientID: patientID})
		rec := httptest.NewRecorder()
		ctrl.FindPatientByID(rec, req)

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func TestPatientController_FindAllPatients(t *testing.T) {
	usecase := new(mocks.PatientUsecase)
	ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase}
	usecase.On("FindAllPatients", mock.Anything, mock.MatchedBy(func(request *requests.FindAllPatients) bool {
		return request.Search == "ana" && request.Page == 1 && request.PageSize == 2
	})).Return([]models.Patient{{FirstName: "Ana"}, {FirstName: "Anita"}}, 5, nil)

	rec := httptest.NewRecorder()
	ctrl.FindAllPatients(rec, httptest.NewRequest(http.MethodGet, "/v1/patients?search=ana&page=1&page_size=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, int64(5), gjson.Get(body, "pagination.total").Int())
	assert.Len(t, gjson.Get(body, "data").Array(), 2)
	assert.NotEmpty(t, gjson.Get(body, "pagination.next_url").String())
}

func TestPatientController_UploadAttachment(t *testing.T) {
	patientID := primitive.NewObjectID().Hex()
	cfg := &config.InternalConfig{}
	cfg.Attachment.MaxUploadSizeInMB = 1

	buildRequest := func(t *testing.T, withFile bool) *http.Request {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField(attachmentFormDescriptionKey, "panoramic x-ray"))
		if withFile {
			part, err := writer.CreateFormFile(attachmentFormFileKey, "xray.png")
			require.NoError(t, err)
			_, err = part.Write([]byte("png-bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/patients/"+patientID+"/attachments", &body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		return withURLParams(req, map[string]string{constvars.URLParamPatientID: patientID})
	}

	t.Run("Uploaded", func(t *testing.T) {
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase, InternalConfig: cfg}
		var content []byte
		usecase.On("UploadAttachment", mock.Anything, mock.MatchedBy(func(request *requests.UploadAttachment) bool {
			return request.PatientID == patientID &&
				request.FileName == "xray.png" &&
				request.ContentType == constvars.MIMEOctetStream &&
				request.Description == "panoramic x-ray"
		})).Run(func(args mock.Arguments) {
			content, _ = io.ReadAll(args.Get(1).(*requests.UploadAttachment).File)
		}).Return(&models.Attachment{ID: primitive.NewObjectID(), FileName: "xray.png"}, nil)

		rec := httptest.NewRecorder()
		ctrl.UploadAttachment(rec, buildRequest(t, true))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "png-bytes", string(content))
		usecase.AssertExpectations(t)
	})

	t.Run("Missing file", func(t *testing.T) {
		usecase := new(mocks.PatientUsecase)
		ctrl := &PatientController{Log: zap.NewNop(), PatientUsecase: usecase, InternalConfig: cfg}

		rec := httptest.NewRecorder()
		ctrl.UploadAttachment(rec, buildRequest(t, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "UploadAttachment", mock.Anything, mock.Anything)
	})
}

func TestInvoiceController_RecordPayment(t *testing.T) {
	invoiceID := primitive.NewObjectID().Hex()

	t.Run("Overpayment result is returned", func(t *testing.T) {
		usecase := new(mocks.InvoiceUsecase)
		ctrl := &InvoiceController{Log: zap.NewNop(), InvoiceUsecase: usecase}
		usecase.On("RecordPayment", mock.Anything, invoiceID, &requests.RecordPayment{Amount: 15000, Method: constvars.PaymentMethodCash}).
			Return(&responses.PaymentResult{InvoiceID: invoiceID, Status: constvars.InvoiceStatusPaid, AmountApplied: 10000, CreditDeposited: 5000}, nil)

		req := withURLParams(jsonRequest(http.MethodPost, "/v1/invoices/"+invoiceID+"/payments", `{"amount":15000,"method":"cash"}`), map[string]string{constvars.URLParamInvoiceID: invoiceID})
		rec := httptest.NewRecorder()
		ctrl.RecordPayment(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5000), gjson.Get(rec.Body.String(), "data.credit_deposited").Int())
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		usecase := new(mocks.InvoiceUsecase)
		ctrl := &InvoiceController{Log: zap.NewNop(), InvoiceUsecase: usecase}

		req := withURLParams(jsonRequest(http.MethodPost, "/v1/invoices/"+invoiceID+"/payments", `{"amount":0,"method":"cash"}`), map[string]string{constvars.URLParamInvoiceID: invoiceID})
		rec := httptest.NewRecorder()
		ctrl.RecordPayment(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cancelled invoice conflicts", func(t *testing.T) {
		usecase := new(mocks.InvoiceUsecase)
		ctrl := &InvoiceController{Log: zap.NewNop(), InvoiceUsecase: usecase}
		usecase.On("RecordPayment", mock.Anything, invoiceID, mock.Anything).Return(nil, exceptions.ErrInvoiceNotPayable(nil, constvars.InvoiceStatusCancelled))

		req := withURLParams(jsonRequest(http.MethodPost, "/v1/invoices/"+invoiceID+"/payments", `{"amount":100,"method":"card"}`), map[string]string{constvars.URLParamInvoiceID: invoiceID})
		rec := httptest.NewRecorder()
		ctrl.RecordPayment(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestWithdrawalController_ApproveWithdrawal(t *testing.T) {
	withdrawalID := primitive.NewObjectID().Hex()

	t.Run("Empty body approves", func(t *testing.T) {
		usecase := new(mocks.WithdrawalUsecase)
		ctrl := &WithdrawalController{Log: zap.NewNop(), WithdrawalUsecase: usecase}
		usecase.On("ApproveWithdrawal", mock.Anything, withdrawalID, &requests.ReviewWithdrawal{}).
			Return(&models.WithdrawalRequest{Status: constvars.WithdrawalStatusApproved}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodPost, "/v1/inventory/withdrawals/"+withdrawalID+"/approve", nil), map[string]string{constvars.URLParamWithdrawalID: withdrawalID})
		rec := httptest.NewRecorder()
		ctrl.ApproveWithdrawal(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.WithdrawalStatusApproved, gjson.Get(rec.Body.String(), "data.status").String())
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		usecase := new(mocks.WithdrawalUsecase)
		ctrl := &WithdrawalController{Log: zap.NewNop(), WithdrawalUsecase: usecase}
		usecase.On("ApproveWithdrawal", mock.Anything, withdrawalID, &requests.ReviewWithdrawal{Note: "ok"}).
			Return(nil, exceptions.ErrInsufficientStock(nil, "Gloves"))

		req := withURLParams(jsonRequest(http.MethodPost, "/v1/inventory/withdrawals/"+withdrawalID+"/approve", `{"note":"ok"}`), map[string]string{constvars.URLParamWithdrawalID: withdrawalID})
		rec := httptest.NewRecorder()
		ctrl.ApproveWithdrawal(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestStatisticsController(t *testing.T) {
	now := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

	t.Run("Summary defaults to the current month", func(t *testing.T) {
		usecase := new(mocks.StatisticsUsecase)
		ctrl := &StatisticsController{Log: zap.NewNop(), StatisticsUsecase: usecase, now: func() time.Time { return now }}
		usecase.On("GetSummary", mock.Anything, &requests.StatisticsSummary{
			From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   now,
		}).Return(&responses.StatisticsSummary{Revenue: 120000}, nil)

		rec := httptest.NewRecorder()
		ctrl.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/v1/statistics/summary", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(120000), gjson.Get(rec.Body.String(), "data.revenue").Int())
	})

	t.Run("Invalid from date", func(t *testing.T) {
		usecase := new(mocks.StatisticsUsecase)
		ctrl := &StatisticsController{Log: zap.NewNop(), StatisticsUsecase: usecase, now: func() time.Time { return now }}

		rec := httptest.NewRecorder()
		ctrl.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/v1/statistics/summary?from=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Export writes an xlsx attachment", func(t *testing.T) {
		usecase := new(mocks.StatisticsUsecase)
		ctrl := &StatisticsController{Log: zap.NewNop(), StatisticsUsecase: usecase, now: func() time.Time { return now }}
		usecase.On("ExportSummary", mock.Anything, mock.Anything).Return([]byte("xlsx"), "summary.xlsx", nil)

		rec := httptest.NewRecorder()
		ctrl.ExportSummary(rec, httptest.NewRequest(http.MethodGet, "/v1/statistics/summary/export?from=2024-05-01&to=2024-05-31", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.MIMEApplicationXLSX, rec.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rec.Header().Get(constvars.HeaderContentDisposition), "summary.xlsx")
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("Export failure", func(t *testing.T) {
		usecase := new(mocks.StatisticsUsecase)
		ctrl := &StatisticsController{Log: zap.NewNop(), StatisticsUsecase: usecase, now: func() time.Time { return now }}
		usecase.On("ExportSummary", mock.Anything, mock.Anything).Return(nil, "", exceptions.ErrBuildReport(errors.New("disk full")))

		rec := httptest.NewRecorder()
		ctrl.ExportSummary(rec, httptest.NewRequest(http.MethodGet, "/v1/statistics/summary/export", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
