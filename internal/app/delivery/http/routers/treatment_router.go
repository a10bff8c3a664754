package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTreatmentRoutes(router chi.Router, treatmentController *controllers.TreatmentController) {
	router.Get("/", treatmentController.FindAllTreatments)
	router.Post("/", treatmentController.CreateTreatment)
	router.Get("/{treatment_id}", treatmentController.FindTreatmentByID)
	router.Put("/{treatment_id}", treatmentController.UpdateTreatment)
	router.Delete("/{treatment_id}", treatmentController.DeleteTreatment)
}
