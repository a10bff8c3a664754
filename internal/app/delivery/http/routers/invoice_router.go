package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, invoiceController *controllers.InvoiceController) {
	router.Get("/", invoiceController.FindAllInvoices)
	router.Post("/", invoiceController.CreateInvoice)
	router.Get("/{invoice_id}", invoiceController.FindInvoiceByID)
	router.Post("/{invoice_id}/payments", invoiceController.RecordPayment)
	router.Post("/{invoice_id}/cancel", invoiceController.CancelInvoice)
}
