package reviewing

import (
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

// Reviewer define a interface para as métricas e painéis de avaliações
type Reviewer interface {
	// GetReviewStats retorna o resumo de avaliações do período: histograma por
	// nota, nota média e crescimento frente ao período anterior
	GetReviewStats(subjectType domain.ReviewSubjectType, filters *domain.ReportFilters) (*domain.ReviewStatsResponse, error)

	// GetCombinedTrend retorna, por bucket, as séries de avaliações do
	// restaurante e dos pratos mescladas
	GetCombinedTrend(filters *domain.ReportFilters, groupBy analytics.Granularity) ([]*domain.CombinedTrendPoint, error)

	// GetReviewsDetail retorna uma página de avaliações do período, da mais
	// recente para a mais antiga
	GetReviewsDetail(subjectType domain.ReviewSubjectType, filters *domain.ReportFilters, page, limit int) (*domain.ReviewDetailResponse, error)

	// GetTopRatedDishes retorna os pratos com melhor avaliação no período
	GetTopRatedDishes(filters *domain.ReportFilters, limit int) ([]*domain.RatedDishItem, error)

	// GetLowestRatedDishes retorna os pratos com pior avaliação no período
	GetLowestRatedDishes(filters *domain.ReportFilters, limit int) ([]*domain.RatedDishItem, error)

	// GetRecentReviews retorna as últimas avaliações do tipo informado
	GetRecentReviews(subjectType domain.ReviewSubjectType, limit int) ([]*domain.ReviewDetail, error)
}
