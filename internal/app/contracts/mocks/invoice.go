package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) (string, error) {
	args := m.Called(ctx, invoice)
	return args.String(0), args.Error(1)
}

func (m *InvoiceRepository) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var r0 *models.Invoice
	if value, ok := args.Get(0).(*models.Invoice); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InvoiceRepository) FindAll(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Invoice
	if value, ok := args.Get(0).([]models.Invoice); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

type InvoiceUsecase struct {
	mock.Mock
}

func (m *InvoiceUsecase) CreateInvoice(ctx context.Context, request *requests.CreateInvoice) (*models.Invoice, error) {
	args := m.Called(ctx, request)
	var r0 *models.Invoice
	if value, ok := args.Get(0).(*models.Invoice); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InvoiceUsecase) FindAllInvoices(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.Invoice
	if value, ok := args.Get(0).([]models.Invoice); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *InvoiceUsecase) FindInvoiceByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var r0 *models.Invoice
	if value, ok := args.Get(0).(*models.Invoice); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InvoiceUsecase) RecordPayment(ctx context.Context, invoiceID string, request *requests.RecordPayment) (*responses.PaymentResult, error) {
	args := m.Called(ctx, invoiceID, request)
	var r0 *responses.PaymentResult
	if value, ok := args.Get(0).(*responses.PaymentResult); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InvoiceUsecase) CancelInvoice(ctx context.Context, invoiceID string, request *requests.CancelInvoice) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceID, request)
	var r0 *models.Invoice
	if value, ok := args.Get(0).(*models.Invoice); ok {
		r0 = value
	}
	return r0, args.Error(1)
}
