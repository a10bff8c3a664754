package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAllAppointments)
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointment_id}", appointmentController.FindAppointmentByID)
	router.Put("/{appointment_id}", appointmentController.UpdateAppointment)
	router.Patch("/{appointment_id}/status", appointmentController.ChangeAppointmentStatus)
	router.Delete("/{appointment_id}", appointmentController.DeleteAppointment)
}
