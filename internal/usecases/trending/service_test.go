package trending

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetBusinessTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("ICT", 7*3600)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, loc)
	prevStart, prevEnd := analytics.PreviousWindow(start, end)

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)

	service := &Service{
		bucketer:  analytics.NewBucketer(loc, 366),
		orderRepo: mockOrderRepo,
	}

	filters := &domain.ReportFilters{StartDate: &start, EndDate: &end}

	tests := []struct {
		name     string
		setup    func()
		groupBy  analytics.Granularity
		wantErr  bool
		validate func(t *testing.T, result *domain.BusinessTrendResponse)
	}{
		{
			name:    "Pedidos distribuidos por dia com resumo consolidado",
			groupBy: analytics.GranularityDay,
			setup: func() {
				mockOrderRepo.EXPECT().
					GetByDateRange(start, end).
					Return([]*domain.OrderRecord{
						{
							ID:            "ORD001",
							CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, loc),
							TotalPrice:    150000,
							PaymentMethod: domain.PaymentMethodCash,
							CustomerID:    stringPtr("CUST001"),
						},
						{
							ID:            "ORD002",
							CreatedAt:     time.Date(2024, 3, 1, 13, 0, 0, 0, loc),
							TotalPrice:    200000,
							PaymentMethod: domain.PaymentMethodQRBanking,
							CustomerID:    stringPtr("CUST002"),
						},
						{
							ID:            "ORD003",
							CreatedAt:     time.Date(2024, 3, 1, 19, 30, 0, 0, loc),
							TotalPrice:    100000,
							PaymentMethod: domain.PaymentMethodCash,
							CustomerID:    stringPtr("CUST001"),
						},
						{
							ID:            "ORD004",
							CreatedAt:     time.Date(2024, 3, 2, 11, 0, 0, 0, loc),
							TotalPrice:    60000,
							PaymentMethod: domain.PaymentMethodQRBanking,
							CustomerID:    stringPtr("CUST003"),
						},
						{
							ID:            "ORD005",
							CreatedAt:     time.Date(2024, 3, 2, 20, 0, 0, 0, loc),
							TotalPrice:    40000,
							PaymentMethod: domain.PaymentMethodCash,
						},
					}, nil)

				mockOrderRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return([]*domain.OrderRecord{
						{
							ID:            "ORD000",
							CreatedAt:     time.Date(2024, 2, 28, 12, 0, 0, 0, loc),
							TotalPrice:    500000,
							PaymentMethod: domain.PaymentMethodCash,
							CustomerID:    stringPtr("CUST001"),
						},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.BusinessTrendResponse) {
				assert.Len(t, result.Trend, 2)

				day1 := result.Trend[0]
				assert.Equal(t, float64(450000), day1.Revenue)
				assert.Equal(t, 3, day1.Orders)
				assert.Equal(t, 2, day1.Customers)
				assert.Equal(t, float64(250000), day1.RevenueCash)
				assert.Equal(t, float64(200000), day1.RevenueQrBanking)
				assert.Equal(t, float64(150000), day1.AvgOrderValue)

				day2 := result.Trend[1]
				assert.Equal(t, float64(100000), day2.Revenue)
				assert.Equal(t, 2, day2.Orders)
				assert.Equal(t, 1, day2.Customers)

				summary := result.Summary
				assert.Equal(t, float64(550000), summary.TotalRevenue)
				assert.Equal(t, 5, summary.TotalOrders)
				assert.Equal(t, 3, summary.TotalCustomers)
				assert.Equal(t, float64(110000), summary.AvgOrderValue)

				// 550000 vs 500000 do periodo anterior
				assert.NotNil(t, summary.Growth.Revenue)
				assert.InDelta(t, 10.0, *summary.Growth.Revenue, 1e-9)
			},
		},
		{
			name:    "Buckets sem pedidos aparecem zerados",
			groupBy: analytics.GranularityDay,
			setup: func() {
				mockOrderRepo.EXPECT().
					GetByDateRange(start, end).
					Return([]*domain.OrderRecord{
						{
							ID:            "ORD001",
							CreatedAt:     time.Date(2024, 3, 2, 12, 0, 0, 0, loc),
							TotalPrice:    80000,
							PaymentMethod: domain.PaymentMethodCash,
						},
					}, nil)

				mockOrderRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.BusinessTrendResponse) {
				assert.Len(t, result.Trend, 2)

				empty := result.Trend[0]
				assert.Equal(t, float64(0), empty.Revenue)
				assert.Equal(t, 0, empty.Orders)
				assert.Equal(t, float64(0), empty.AvgOrderValue)

				assert.Equal(t, float64(80000), result.Trend[1].Revenue)
			},
		},
		{
			name:    "Periodo anterior zerado deixa o crescimento nulo",
			groupBy: analytics.GranularityDay,
			setup: func() {
				mockOrderRepo.EXPECT().
					GetByDateRange(start, end).
					Return([]*domain.OrderRecord{
						{
							ID:            "ORD001",
							CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, loc),
							TotalPrice:    500000,
							PaymentMethod: domain.PaymentMethodQRBanking,
						},
					}, nil)

				mockOrderRepo.EXPECT().
					GetByDateRange(prevStart, prevEnd).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.BusinessTrendResponse) {
				assert.Nil(t, result.Summary.Growth.Revenue)
				assert.Nil(t, result.Summary.Growth.Orders)
				assert.Nil(t, result.Summary.Growth.Customers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetBusinessTrend(filters, tt.groupBy)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_GetBusinessTrend_RequiresDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		bucketer:  analytics.NewBucketer(time.UTC, 366),
		orderRepo: mocks.NewMockOrderRepository(ctrl),
	}

	_, err := service.GetBusinessTrend(nil, analytics.GranularityDay)
	assert.Error(t, err)

	_, err = service.GetBusinessTrend(&domain.ReportFilters{}, analytics.GranularityDay)
	assert.Error(t, err)
}

func stringPtr(s string) *string {
	return &s
}
