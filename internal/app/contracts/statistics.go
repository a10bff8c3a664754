package contracts

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

// StatisticsRepository runs the reporting aggregations over the clinic
// collections. Every method honours the optional branch filter.
type StatisticsRepository interface {
	Revenue(ctx context.Context, request *requests.StatisticsSummary) (int64, map[string]int64, error)
	Invoiced(ctx context.Context, request *requests.StatisticsSummary) (int64, error)
	Outstanding(ctx context.Context, request *requests.StatisticsSummary) (int64, error)
	AppointmentsByStatus(ctx context.Context, request *requests.StatisticsSummary) (map[string]int64, error)
	NewPatients(ctx context.Context, request *requests.StatisticsSummary) (int64, error)
	TopTreatments(ctx context.Context, request *requests.StatisticsSummary, limit int) ([]responses.TreatmentRevenue, error)
	StockValuation(ctx context.Context, request *requests.StatisticsSummary) (int64, error)
	LowStockProducts(ctx context.Context, request *requests.StatisticsSummary) (int64, error)
}

type StatisticsUsecase interface {
	GetSummary(ctx context.Context, request *requests.StatisticsSummary) (*responses.StatisticsSummary, error)
	ExportSummary(ctx context.Context, request *requests.StatisticsSummary) ([]byte, string, error)
}
