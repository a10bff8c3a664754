package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBranchRoutes(router chi.Router, branchController *controllers.BranchController) {
	router.Get("/", branchController.FindAllBranches)
	router.Post("/", branchController.CreateBranch)
	router.Get("/{branch_id}", branchController.FindBranchByID)
	router.Put("/{branch_id}", branchController.UpdateBranch)
	router.Delete("/{branch_id}", branchController.DeactivateBranch)
}
