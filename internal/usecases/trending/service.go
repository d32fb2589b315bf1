package trending

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"github.com/vfg2006/restaurant-insights-api/pkg/utils"
)

// Service implementa a interface Trender sobre os pedidos concluídos
type Service struct {
	bucketer  *analytics.Bucketer
	orderRepo repository.OrderRepository
}

// NewService cria uma nova instância do serviço de tendência de negócio
func NewService(bucketer *analytics.Bucketer, orderRepo repository.OrderRepository) Trender {
	return &Service{
		bucketer:  bucketer,
		orderRepo: orderRepo,
	}
}

// GetBusinessTrend retorna a série de tendência do período agrupada pela
// granularidade informada. Buckets sem pedidos aparecem zerados; o resumo
// compara o período com a janela imediatamente anterior de mesma duração.
func (s *Service) GetBusinessTrend(filters *domain.ReportFilters, groupBy analytics.Granularity) (*domain.BusinessTrendResponse, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	start, end := *filters.StartDate, *filters.EndDate

	buckets, err := s.bucketer.Enumerate(start, end, groupBy)
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := analytics.PreviousWindow(start, end)

	var (
		current  []*domain.OrderRecord
		previous []*domain.OrderRecord
		currErr  error
		prevErr  error
	)

	// Busca o período atual e o anterior em paralelo
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currErr = s.orderRepo.GetByDateRange(start, end)
	}()

	go func() {
		defer wg.Done()
		previous, prevErr = s.orderRepo.GetByDateRange(prevStart, prevEnd)
	}()

	wg.Wait()

	if currErr != nil {
		logrus.Error("Erro ao buscar pedidos do período", map[string]any{
			"startDate": start,
			"endDate":   end,
			"error":     currErr,
		})
		return nil, currErr
	}

	if prevErr != nil {
		logrus.Error("Erro ao buscar pedidos do período anterior", map[string]any{
			"startDate": prevStart,
			"endDate":   prevEnd,
			"error":     prevErr,
		})
		return nil, prevErr
	}

	trend, err := s.buildTrend(buckets, current)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(current, previous)

	return &domain.BusinessTrendResponse{
		Trend:   trend,
		Summary: summary,
	}, nil
}

// buildTrend distribui os pedidos pelos buckets enumerados. Cada bucket
// aparece na série mesmo sem pedidos.
func (s *Service) buildTrend(buckets *analytics.BucketSet, orders []*domain.OrderRecord) ([]*domain.TrendPoint, error) {
	trend := make([]*domain.TrendPoint, len(buckets.Buckets))
	customersByBucket := make([]map[string]struct{}, len(buckets.Buckets))

	for i, bucket := range buckets.Buckets {
		trend[i] = &domain.TrendPoint{
			Date:  bucket.Start,
			Label: bucket.Label,
		}
		customersByBucket[i] = make(map[string]struct{})
	}

	for _, order := range orders {
		idx, err := buckets.IndexFor(order.CreatedAt)
		if err != nil {
			return nil, err
		}

		point := trend[idx]
		point.Revenue += order.TotalPrice
		point.Orders++

		switch order.PaymentMethod {
		case domain.PaymentMethodQRBanking:
			point.RevenueQrBanking += order.TotalPrice
		case domain.PaymentMethodCash:
			point.RevenueCash += order.TotalPrice
		}

		if order.CustomerID != nil {
			customersByBucket[idx][*order.CustomerID] = struct{}{}
		}
	}

	for i, point := range trend {
		point.Customers = len(customersByBucket[i])
		if point.Orders > 0 {
			point.AvgOrderValue = utils.RoundWithTwoDecimalPlace(point.Revenue / float64(point.Orders))
		}
	}

	return trend, nil
}

// buildSummary consolida os totais do período e o crescimento frente ao
// período anterior. Crescimento nulo significa período anterior sem baseline.
func buildSummary(current, previous []*domain.OrderRecord) *domain.TrendSummary {
	currRevenue, currOrders, currCustomers := totals(current)
	prevRevenue, prevOrders, prevCustomers := totals(previous)

	summary := &domain.TrendSummary{
		TotalRevenue:   currRevenue,
		TotalOrders:    currOrders,
		TotalCustomers: currCustomers,
		Growth: domain.GrowthSummary{
			Revenue:   analytics.Growth(currRevenue, prevRevenue),
			Orders:    analytics.Growth(float64(currOrders), float64(prevOrders)),
			Customers: analytics.Growth(float64(currCustomers), float64(prevCustomers)),
		},
	}

	if currOrders > 0 {
		summary.AvgOrderValue = utils.RoundWithTwoDecimalPlace(currRevenue / float64(currOrders))
	}

	return summary
}

func totals(orders []*domain.OrderRecord) (revenue float64, count int, customers int) {
	distinct := make(map[string]struct{})

	for _, order := range orders {
		revenue += order.TotalPrice
		count++

		if order.CustomerID != nil {
			distinct[*order.CustomerID] = struct{}{}
		}
	}

	return revenue, count, len(distinct)
}
