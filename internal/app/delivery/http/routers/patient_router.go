package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController, creditController *controllers.CreditController, findingController *controllers.MedicalFindingController) {
	router.Get("/", patientController.FindAllPatients)
	router.Post("/", patientController.CreatePatient)

	router.Route("/{patient_id}", func(r chi.Router) {
		r.Get("/", patientController.FindPatientByID)
		r.Put("/", patientController.UpdatePatient)
		r.Delete("/", patientController.DeletePatient)

		r.Post("/attachments", patientController.UploadAttachment)
		r.Get("/attachments/{attachment_id}/url", patientController.GetAttachmentURL)

		r.Get("/findings", findingController.FindFindingsByPatient)
		r.Get("/dental-chart", findingController.GetDentalChart)

		r.Get("/credit", creditController.GetCreditBalance)
		r.Get("/credit/history", creditController.FindCreditHistory)
		r.Post("/credit/deposit", creditController.Deposit)
		r.Post("/credit/withdraw", creditController.Withdraw)
	})
}
