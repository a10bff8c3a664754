package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFindingRoutes(router chi.Router, findingController *controllers.MedicalFindingController) {
	router.Post("/", findingController.CreateFinding)
	router.Get("/{finding_id}", findingController.FindFindingByID)
	router.Put("/{finding_id}", findingController.UpdateFinding)
	router.Delete("/{finding_id}", findingController.DeleteFinding)
}
