package mocks

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type StatisticsRepository struct {
	mock.Mock
}

func (m *StatisticsRepository) Revenue(ctx context.Context, request *requests.StatisticsSummary) (int64, map[string]int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	var r1 map[string]int64
	if value, ok := args.Get(1).(map[string]int64); ok {
		r1 = value
	}
	return r0, r1, args.Error(2)
}

func (m *StatisticsRepository) Invoiced(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) Outstanding(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) AppointmentsByStatus(ctx context.Context, request *requests.StatisticsSummary) (map[string]int64, error) {
	args := m.Called(ctx, request)
	var r0 map[string]int64
	if value, ok := args.Get(0).(map[string]int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) NewPatients(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) TopTreatments(ctx context.Context, request *requests.StatisticsSummary, limit int) ([]responses.TreatmentRevenue, error) {
	args := m.Called(ctx, request, limit)
	var r0 []responses.TreatmentRevenue
	if value, ok := args.Get(0).([]responses.TreatmentRevenue); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) StockValuation(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsRepository) LowStockProducts(ctx context.Context, request *requests.StatisticsSummary) (int64, error) {
	args := m.Called(ctx, request)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

type StatisticsUsecase struct {
	mock.Mock
}

func (m *StatisticsUsecase) GetSummary(ctx context.Context, request *requests.StatisticsSummary) (*responses.StatisticsSummary, error) {
	args := m.Called(ctx, request)
	var r0 *responses.StatisticsSummary
	if value, ok := args.Get(0).(*responses.StatisticsSummary); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StatisticsUsecase) ExportSummary(ctx context.Context, request *requests.StatisticsSummary) ([]byte, string, error) {
	args := m.Called(ctx, request)
	var r0 []byte
	if value, ok := args.Get(0).([]byte); ok {
		r0 = value
	}
	return r0, args.String(1), args.Error(2)
}
