package ranking

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

// Service implementa a interface Ranker sobre os itens de pedidos concluídos
type Service struct {
	orderItemRepo repository.OrderItemRepository
}

// NewService cria uma nova instância do serviço de rankings de receita
func NewService(orderItemRepo repository.OrderItemRepository) Ranker {
	return &Service{
		orderItemRepo: orderItemRepo,
	}
}

// GetDishRevenue retorna o ranking de receita por prato. O percentual de cada
// prato é calculado sobre o conjunto completo antes do recorte do limite, e o
// crescimento compara com a janela imediatamente anterior de mesma duração
// (pratos sem venda anterior têm crescimento nulo).
func (s *Service) GetDishRevenue(filters *domain.ReportFilters, limit int) ([]*domain.DishRevenueItem, error) {
	current, previous, err := s.fetchWindows(filters)
	if err != nil {
		return nil, err
	}

	byDish := make(map[string]*domain.DishRevenueItem)
	for _, item := range current {
		dish, ok := byDish[item.DishID]
		if !ok {
			dish = &domain.DishRevenueItem{
				ID:   item.DishID,
				Name: item.DishName,
			}
			if len(item.CategoryNames) > 0 {
				dish.Category = item.CategoryNames[0]
			}
			byDish[item.DishID] = dish
		}

		dish.Quantity += item.Quantity
		dish.Revenue += item.Revenue()
	}

	prevRevenue := make(map[string]float64)
	for _, item := range previous {
		prevRevenue[item.DishID] += item.Revenue()
	}

	dishes := make([]*domain.DishRevenueItem, 0, len(byDish))
	for _, dish := range byDish {
		dishes = append(dishes, dish)
	}

	dishes = analytics.Rank(dishes,
		func(d *domain.DishRevenueItem) float64 { return d.Revenue },
		func(d *domain.DishRevenueItem) int { return d.Quantity },
		func(d *domain.DishRevenueItem) string { return d.Name },
		0,
	)

	analytics.NormalizePercentages(dishes,
		func(d *domain.DishRevenueItem) float64 { return d.Revenue },
		func(d *domain.DishRevenueItem, pct float64) { d.PercentOfTotal = pct },
	)

	for i, dish := range dishes {
		dish.Rank = i + 1
		dish.Growth = analytics.Growth(dish.Revenue, prevRevenue[dish.ID])
	}

	if limit > 0 && len(dishes) > limit {
		dishes = dishes[:limit]
	}

	return dishes, nil
}

// GetCategoryRevenue retorna o rateio de receita por categoria. Um item com
// mais de uma categoria contribui com a receita integral para cada uma, então
// a soma das categorias pode exceder a receita dos pedidos; os percentuais são
// normalizados contra a soma das categorias e fecham em 100.0.
func (s *Service) GetCategoryRevenue(filters *domain.ReportFilters) ([]*domain.CategoryRevenueItem, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	items, err := s.orderItemRepo.GetByDateRange(*filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.Error("Erro ao buscar itens de pedidos do período", map[string]any{
			"startDate": filters.StartDate,
			"endDate":   filters.EndDate,
			"error":     err,
		})
		return nil, err
	}

	byCategory := make(map[string]*domain.CategoryRevenueItem)
	dishesByCategory := make(map[string]map[string]struct{})

	for _, item := range items {
		for i, categoryID := range item.CategoryIDs {
			category, ok := byCategory[categoryID]
			if !ok {
				category = &domain.CategoryRevenueItem{
					ID:       categoryID,
					Category: item.CategoryNames[i],
				}
				byCategory[categoryID] = category
				dishesByCategory[categoryID] = make(map[string]struct{})
			}

			category.Quantity += item.Quantity
			category.Revenue += item.Revenue()
			dishesByCategory[categoryID][item.DishID] = struct{}{}
		}
	}

	categories := make([]*domain.CategoryRevenueItem, 0, len(byCategory))
	for id, category := range byCategory {
		category.Dishes = len(dishesByCategory[id])
		categories = append(categories, category)
	}

	categories = analytics.Rank(categories,
		func(c *domain.CategoryRevenueItem) float64 { return c.Revenue },
		func(c *domain.CategoryRevenueItem) int { return c.Quantity },
		func(c *domain.CategoryRevenueItem) string { return c.Category },
		0,
	)

	analytics.NormalizePercentages(categories,
		func(c *domain.CategoryRevenueItem) float64 { return c.Revenue },
		func(c *domain.CategoryRevenueItem, pct float64) { c.PercentOfTotal = pct },
	)

	for i, category := range categories {
		category.Rank = i + 1
		category.Color = domain.CategoryColors[i%len(domain.CategoryColors)]
	}

	return categories, nil
}

// fetchWindows busca em paralelo os itens do período e da janela anterior
func (s *Service) fetchWindows(filters *domain.ReportFilters) ([]*domain.OrderLineItem, []*domain.OrderLineItem, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	start, end := *filters.StartDate, *filters.EndDate
	prevStart, prevEnd := analytics.PreviousWindow(start, end)

	var (
		current  []*domain.OrderLineItem
		previous []*domain.OrderLineItem
		currErr  error
		prevErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currErr = s.orderItemRepo.GetByDateRange(start, end)
	}()

	go func() {
		defer wg.Done()
		previous, prevErr = s.orderItemRepo.GetByDateRange(prevStart, prevEnd)
	}()

	wg.Wait()

	if currErr != nil {
		logrus.Error("Erro ao buscar itens de pedidos do período", map[string]any{
			"startDate": start,
			"endDate":   end,
			"error":     currErr,
		})
		return nil, nil, currErr
	}

	if prevErr != nil {
		logrus.Error("Erro ao buscar itens de pedidos do período anterior", map[string]any{
			"startDate": prevStart,
			"endDate":   prevEnd,
			"error":     prevErr,
		})
		return nil, nil, prevErr
	}

	return current, previous, nil
}
