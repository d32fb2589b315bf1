package trending

import (
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
)

// Trender define a interface para a série temporal de desempenho do negócio
type Trender interface {
	// GetBusinessTrend retorna a série de tendência do período agrupada pela
	// granularidade informada, com resumo e crescimento vs. período anterior
	GetBusinessTrend(filters *domain.ReportFilters, groupBy analytics.Granularity) (*domain.BusinessTrendResponse, error)
}
