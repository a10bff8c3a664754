package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachStatisticsRoutes(router chi.Router, statisticsController *controllers.StatisticsController) {
	router.Get("/summary", statisticsController.GetSummary)
	router.Get("/summary/export", statisticsController.ExportSummary)
}
