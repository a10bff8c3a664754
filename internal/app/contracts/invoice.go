package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) (string, error)
	FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	FindAll(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error)
	Update(ctx context.Context, invoice *models.Invoice) error
}

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, request *requests.CreateInvoice) (*models.Invoice, error)
	FindAllInvoices(ctx context.Context, request *requests.FindAllInvoices) ([]models.Invoice, int, error)
	FindInvoiceByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	RecordPayment(ctx context.Context, invoiceID string, request *requests.RecordPayment) (*responses.PaymentResult, error)
	CancelInvoice(ctx context.Context, invoiceID string, request *requests.CancelInvoice) (*models.Invoice, error)
}
