package statistics

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	allBranches          = "all"
	exportFileNameFormat = "statistics-%s-%s.xlsx"
	exportDateLayout     = "20060102"
)

type statisticsUsecase struct {
	StatisticsRepository contracts.StatisticsRepository
	RedisRepository      contracts.RedisRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

func NewStatisticsUsecase(
	statisticsRepository contracts.StatisticsRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.StatisticsUsecase {
	return &statisticsUsecase{
		StatisticsRepository: statisticsRepository,
		RedisRepository:      redisRepository,
		InternalConfig:       internalConfig,
		Log:                  logger,
		now:                  time.Now,
	}
}

// GetSummary serves the summary from Redis when a fresh copy for the same
// period and branch exists.
func (uc *statisticsUsecase) GetSummary(ctx context.Context, request *requests.StatisticsSummary) (*responses.StatisticsSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("statisticsUsecase.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, request.BranchID),
	)

	if !request.To.After(request.From) {
		return nil, exceptions.ErrBadRequestRule(nil, constvars.ErrClientInvalidTimeRange)
	}

	cacheKey := summaryCacheKey(request)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("statisticsUsecase.GetSummary error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if cached != "" {
		summary := new(responses.StatisticsSummary)
		err = json.Unmarshal([]byte(cached), summary)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return summary, nil
	}

	summary, err := uc.buildSummary(ctx, request)
	if err != nil {
		uc.Log.Error("statisticsUsecase.GetSummary error building summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Statistics.CacheTTLInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, summary, ttl)
	if err != nil {
		uc.Log.Error("statisticsUsecase.GetSummary error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("statisticsUsecase.GetSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return summary, nil
}

func (uc *statisticsUsecase) ExportSummary(ctx context.Context, request *requests.StatisticsSummary) ([]byte, string, error) {
	summary, err := uc.GetSummary(ctx, request)
	if err != nil {
		return nil, "", err
	}

	content, err := buildWorkbook(summary)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("statisticsUsecase.ExportSummary error building workbook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrBuildReport(err)
	}

	fileName := fmt.Sprintf(exportFileNameFormat, request.From.Format(exportDateLayout), request.To.Format(exportDateLayout))
	return content, fileName, nil
}

func (uc *statisticsUsecase) buildSummary(ctx context.Context, request *requests.StatisticsSummary) (*responses.StatisticsSummary, error) {
	var err error
	summary := &responses.StatisticsSummary{
		From:        request.From,
		To:          request.To,
		BranchID:    request.BranchID,
		GeneratedAt: uc.now(),
	}

	summary.Revenue, summary.RevenueByMethod, err = uc.StatisticsRepository.Revenue(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.Invoiced, err = uc.StatisticsRepository.Invoiced(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.Outstanding, err = uc.StatisticsRepository.Outstanding(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.Appointments, err = uc.StatisticsRepository.AppointmentsByStatus(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.NewPatients, err = uc.StatisticsRepository.NewPatients(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.TopTreatments, err = uc.StatisticsRepository.TopTreatments(ctx, request, uc.InternalConfig.Statistics.TopTreatmentsLimit)
	if err != nil {
		return nil, err
	}
	summary.StockValuation, err = uc.StatisticsRepository.StockValuation(ctx, request)
	if err != nil {
		return nil, err
	}
	summary.LowStockProducts, err = uc.StatisticsRepository.LowStockProducts(ctx, request)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func summaryCacheKey(request *requests.StatisticsSummary) string {
	branchID := request.BranchID
	if branchID == "" {
		branchID = allBranches
	}
	return fmt.Sprintf(constvars.RedisKeyStatisticsFormat,
		branchID,
		request.From.UTC().Format(time.RFC3339),
		request.To.UTC().Format(time.RFC3339),
	)
}
