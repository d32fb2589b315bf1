package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-insights-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-insights-api/pkg/log"
)

func GetBusinessTrend(service trending.Trender, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("trend: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		groupBy, err := analytics.ParseGranularity(r.URL.Query().Get("groupBy"))
		if err != nil {
			logger.WithFields(log.Fields{
				"groupBy": r.URL.Query().Get("groupBy"),
				"error":   err.Error(),
			}).Warn("trend: invalid groupBy parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidGranularity, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"startDate": filters.StartDate.Format(time.DateOnly),
			"endDate":   filters.EndDate.Format(time.DateOnly),
			"groupBy":   groupBy,
		}).Debug("trend: fetching business trend")

		trend, err := service.GetBusinessTrend(filters, groupBy)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": filters.StartDate.Format(time.DateOnly),
				"endDate":   filters.EndDate.Format(time.DateOnly),
				"error":     err.Error(),
			}).Error("trend: failed to get business trend")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithField("error", err.Error()).Error("trend: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
