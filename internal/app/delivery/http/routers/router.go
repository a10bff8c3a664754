package routers

import (
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth           *controllers.AuthController
	User           *controllers.UserController
	Branch         *controllers.BranchController
	Patient        *controllers.PatientController
	Credit         *controllers.CreditController
	Appointment    *controllers.AppointmentController
	MedicalFinding *controllers.MedicalFindingController
	Treatment      *controllers.TreatmentController
	Invoice        *controllers.InvoiceController
	Product        *controllers.ProductController
	Inventory      *controllers.InventoryController
	Withdrawal     *controllers.WithdrawalController
	Statistics     *controllers.StatisticsController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(chimiddleware.RealIP)

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}
	router.Use(middlewares.BodyLimit)

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")
	loginLimiter := middlewares.NewLoginRateLimiter()

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, loginLimiter, ctrls.Auth)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authenticate)
			r.Use(middlewares.Authorize)

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, ctrls.User)
			})
			r.Route("/branches", func(r chi.Router) {
				attachBranchRoutes(r, ctrls.Branch)
			})
			r.Route("/treatments", func(r chi.Router) {
				attachTreatmentRoutes(r, ctrls.Treatment)
			})
			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, ctrls.Patient, ctrls.Credit, ctrls.MedicalFinding)
			})
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, ctrls.Appointment)
			})
			r.Route("/findings", func(r chi.Router) {
				attachFindingRoutes(r, ctrls.MedicalFinding)
			})
			r.Route("/invoices", func(r chi.Router) {
				attachInvoiceRoutes(r, ctrls.Invoice)
			})
			r.Route("/inventory", func(r chi.Router) {
				attachInventoryRoutes(r, ctrls.Product, ctrls.Inventory, ctrls.Withdrawal)
			})
			r.Route("/statistics", func(r chi.Router) {
				attachStatisticsRoutes(r, ctrls.Statistics)
			})
		})
	})
}
