package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/restaurant-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-insights-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-insights-api/pkg/log"
)

func GetDishRevenue(service ranking.Ranker, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("ranking: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r, "limit", cfg.Reports.DefaultDishLimit, cfg.Reports.MaxDishLimit)
		if err != nil {
			logger.WithFields(log.Fields{
				"limit": r.URL.Query().Get("limit"),
				"error": err.Error(),
			}).Warn("ranking: invalid limit parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dishes, err := service.GetDishRevenue(filters, limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ranking: failed to get dish revenue")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dishes); err != nil {
			logger.WithField("error", err.Error()).Error("ranking: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCategoryRevenue(service ranking.Ranker, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("ranking: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		categories, err := service.GetCategoryRevenue(filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("ranking: failed to get category revenue")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categories); err != nil {
			logger.WithField("error", err.Error()).Error("ranking: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
