package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Get("/", userController.FindAllUsers)
	router.Post("/", userController.CreateUser)
	router.Get("/{user_id}", userController.FindUserByID)
	router.Put("/{user_id}", userController.UpdateUser)
	router.Delete("/{user_id}", userController.DeactivateUser)
}
