package statistics

import (
	"bytes"
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type statisticsFixture struct {
	statsRepo *mocks.StatisticsRepository
	redisRepo *mocks.RedisRepository
}

func newStatisticsFixture() *statisticsFixture {
	return &statisticsFixture{
		statsRepo: new(mocks.StatisticsRepository),
		redisRepo: new(mocks.RedisRepository),
	}
}

func (f *statisticsFixture) usecase() *statisticsUsecase {
	cfg := &config.InternalConfig{Statistics: config.AppStatistics{CacheTTLInMinutes: 5, TopTreatmentsLimit: 3}}
	return NewStatisticsUsecase(f.statsRepo, f.redisRepo, cfg, zap.NewNop()).(*statisticsUsecase)
}

func (f *statisticsFixture) expectAggregations(request *requests.StatisticsSummary) {
	f.statsRepo.On("Revenue", mock.Anything, request).Return(int64(900000), map[string]int64{"cash": 400000, "card": 500000}, nil)
	f.statsRepo.On("Invoiced", mock.Anything, request).Return(int64(1200000), nil)
	f.statsRepo.On("Outstanding", mock.Anything, request).Return(int64(300000), nil)
	f.statsRepo.On("AppointmentsByStatus", mock.Anything, request).Return(map[string]int64{"completed": 12, "cancelled": 2}, nil)
	f.statsRepo.On("NewPatients", mock.Anything, request).Return(int64(7), nil)
	f.statsRepo.On("TopTreatments", mock.Anything, request, 3).Return([]responses.TreatmentRevenue{
		{TreatmentID: "t1", Description: "Scaling", Quantity: 6, Revenue: 600000},
	}, nil)
	f.statsRepo.On("StockValuation", mock.Anything, request).Return(int64(2500000), nil)
	f.statsRepo.On("LowStockProducts", mock.Anything, request).Return(int64(2), nil)
}

func summaryRequest() *requests.StatisticsSummary {
	return &requests.StatisticsSummary{
		From: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestGetSummary(t *testing.T) {
	t.Run("Computes and caches on miss", func(t *testing.T) {
		f := newStatisticsFixture()
		request := summaryRequest()
		key := "statistics:all:2024-05-01T00:00:00Z:2024-05-31T23:59:59Z"
		f.redisRepo.On("Get", mock.Anything, key).Return("", nil)
		f.expectAggregations(request)
		f.redisRepo.On("Set", mock.Anything, key, mock.Anything, 5*time.Minute).Return(nil)

		summary, err := f.usecase().GetSummary(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(900000), summary.Revenue)
		assert.Equal(t, int64(500000), summary.RevenueByMethod["card"])
		assert.Equal(t, int64(12), summary.Appointments["completed"])
		assert.Equal(t, int64(2500000), summary.StockValuation)
		f.redisRepo.AssertExpectations(t)
	})

	t.Run("Served from cache on hit", func(t *testing.T) {
		f := newStatisticsFixture()
		request := summaryRequest()
		request.BranchID = "663a1f1e2b3c4d5e6f708192"
		cached, _ := json.Marshal(&responses.StatisticsSummary{Revenue: 42})
		f.redisRepo.On("Get", mock.Anything, summaryCacheKey(request)).Return(string(cached), nil)

		summary, err := f.usecase().GetSummary(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(42), summary.Revenue)
		f.statsRepo.AssertNotCalled(t, "Revenue", mock.Anything, mock.Anything)
	})

	t.Run("Inverted period", func(t *testing.T) {
		f := newStatisticsFixture()
		request := summaryRequest()
		request.From, request.To = request.To, request.From

		_, err := f.usecase().GetSummary(context.Background(), request)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})
}

func TestExportSummary(t *testing.T) {
	f := newStatisticsFixture()
	request := summaryRequest()
	f.redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil)
	f.expectAggregations(request)
	f.redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	content, fileName, err := f.usecase().ExportSummary(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "statistics-20240501-20240531.xlsx", fileName)

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "Revenue", workbook.GetCellValue(sheetSummary, "A5"))
	assert.Equal(t, "900000", workbook.GetCellValue(sheetSummary, "B5"))
	assert.Equal(t, "Scaling", workbook.GetCellValue(sheetTopTreatments, "A2"))
	assert.Equal(t, "cancelled", workbook.GetCellValue(sheetAppointments, "A2"))
	assert.Equal(t, "12", workbook.GetCellValue(sheetAppointments, "B3"))
}
