package controllers

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const reportTimeout = 30 * time.Second

type StatisticsController struct {
	Log               *zap.Logger
	StatisticsUsecase contracts.StatisticsUsecase
	now               func() time.Time
}

var (
	statisticsControllerInstance *StatisticsController
	onceStatisticsController     sync.Once
)

func NewStatisticsController(logger *zap.Logger, statisticsUsecase contracts.StatisticsUsecase) *StatisticsController {
	onceStatisticsController.Do(func() {
		statisticsControllerInstance = &StatisticsController{
			Log:               logger,
			StatisticsUsecase: statisticsUsecase,
			now:               time.Now,
		}
	})
	return statisticsControllerInstance
}

func (ctrl *StatisticsController) GetSummary(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("StatisticsController.GetSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request, err := ctrl.buildSummaryRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	summary, err := ctrl.StatisticsUsecase.GetSummary(ctx, request)
	if err != nil {
		ctrl.Log.Error("StatisticsController.GetSummary error from StatisticsUsecase.GetSummary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStatisticsSummarySuccessMessage, summary)
}

func (ctrl *StatisticsController) ExportSummary(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("StatisticsController.ExportSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	request, err := ctrl.buildSummaryRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportTimeout)
	defer cancel()

	content, fileName, err := ctrl.StatisticsUsecase.ExportSummary(ctx, request)
	if err != nil {
		ctrl.Log.Error("StatisticsController.ExportSummary error from StatisticsUsecase.ExportSummary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, ctx, err)
		return
	}

	ctrl.Log.Info("StatisticsController.ExportSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, fileName),
	)
	utils.BuildFileResponse(w, constvars.MIMEApplicationXLSX, fileName, content)
}

// buildSummaryRequest defaults a missing period to the current month up to now.
func (ctrl *StatisticsController) buildSummaryRequest(r *http.Request) (*requests.StatisticsSummary, error) {
	dateRange, err := utils.BuildDateRangeRequest(r)
	if err != nil {
		return nil, err
	}
	branchID, err := optionalObjectIDQuery(r, constvars.URLQueryParamBranchID)
	if err != nil {
		return nil, err
	}

	now := ctrl.now()
	request := &requests.StatisticsSummary{
		From:     time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		To:       now,
		BranchID: branchID,
	}
	if dateRange.From != nil {
		request.From = *dateRange.From
	}
	if dateRange.To != nil {
		request.To = *dateRange.To
	}
	return request, nil
}
