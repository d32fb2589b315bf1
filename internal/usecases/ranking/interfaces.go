package ranking

import (
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

// Ranker define a interface para os rankings de receita do cardápio
type Ranker interface {
	// GetDishRevenue retorna o ranking de receita por prato do período,
	// limitado aos primeiros limit pratos (limit <= 0 retorna todos)
	GetDishRevenue(filters *domain.ReportFilters, limit int) ([]*domain.DishRevenueItem, error)

	// GetCategoryRevenue retorna o rateio de receita por categoria do período
	GetCategoryRevenue(filters *domain.ReportFilters) ([]*domain.CategoryRevenueItem, error)
}
