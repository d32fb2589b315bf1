package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/config"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"github.com/vfg2006/restaurant-insights-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-insights-api/pkg/utils"
)

// parseReportFilters lê startDate e endDate (obrigatórios, formato
// 2006-01-02) da query string. As datas chegam como dias de calendário
// inclusivos; EndDate sai convertido para a meia-noite seguinte, o limite
// exclusivo que o motor de agregação espera.
func parseReportFilters(r *http.Request, loc *time.Location) (*domain.ReportFilters, error) {
	startDate, err := utils.ParseDateIn(r.URL.Query().Get("startDate"), loc)
	if err != nil {
		return nil, errors.Wrap(err, "startDate inválido")
	}

	endDate, err := utils.ParseDateIn(r.URL.Query().Get("endDate"), loc)
	if err != nil {
		return nil, errors.Wrap(err, "endDate inválido")
	}

	end := endDate.AddDate(0, 0, 1)

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   &end,
	}, nil
}

// parseLimit lê um parâmetro numérico da query string com padrão e teto
func parseLimit(r *http.Request, name string, fallback, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "%s inválido", name)
	}

	if value > max {
		value = max
	}

	return value, nil
}

// parseSubjectType lê o tipo de alvo das rotas de avaliações; vazio assume o
// restaurante, o painel padrão do dashboard
func parseSubjectType(raw string) (domain.ReviewSubjectType, error) {
	switch raw {
	case "restaurant", "":
		return domain.ReviewSubjectRestaurant, nil
	case "menu":
		return domain.ReviewSubjectDish, nil
	default:
		return "", errors.Errorf("tipo de avaliação inválido: %q (aceitos: restaurant, menu)", raw)
	}
}

// writeEngineError traduz os erros sentinela do motor de agregação para os
// códigos de erro da API; qualquer outro erro vira erro interno
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, analytics.ErrInvalidGranularity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidGranularity, err.Error(), nil)
	case errors.Is(err, analytics.ErrInvalidPage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPagination, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

// ReportConfig agrupa o que os handlers precisam saber dos relatórios: o fuso
// dos buckets e os limites de listagem e paginação
type ReportConfig struct {
	Location *time.Location
	Reports  config.Reports
}
