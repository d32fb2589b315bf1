package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/reviewing"
	"github.com/vfg2006/restaurant-insights-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-insights-api/pkg/log"
)

func GetReviewStats(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		subjectType, err := parseSubjectType(r.URL.Query().Get("subject"))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("reviews: invalid subject type")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("reviews: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		stats, err := service.GetReviewStats(subjectType, filters)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to get review stats")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetReviewTrend(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("reviews: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		groupBy, err := analytics.ParseGranularity(r.URL.Query().Get("groupBy"))
		if err != nil {
			logger.WithFields(log.Fields{
				"groupBy": r.URL.Query().Get("groupBy"),
				"error":   err.Error(),
			}).Warn("reviews: invalid groupBy parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidGranularity, err.Error(), nil)
			return
		}

		trend, err := service.GetCombinedTrend(filters, groupBy)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to get combined trend")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trend); err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetReviewsDetail(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		subjectType, err := parseSubjectType(r.URL.Query().Get("subject"))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("reviews: invalid subject type")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("reviews: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		page, err := parseLimit(r, "page", 1, 1<<30)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPagination, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r, "limit", cfg.Reports.DefaultPageSize, cfg.Reports.MaxPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPagination, err.Error(), nil)
			return
		}

		detail, err := service.GetReviewsDetail(subjectType, filters, page, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"page":  page,
				"limit": limit,
				"error": err.Error(),
			}).Error("reviews: failed to get reviews detail")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetTopRatedDishes(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return ratedDishesHandler(cfg, "top rated", service.GetTopRatedDishes)
}

func GetLowestRatedDishes(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return ratedDishesHandler(cfg, "lowest rated", service.GetLowestRatedDishes)
}

// ratedDishesHandler fatora o parsing comum dos dois rankings de pratos por nota
func ratedDishesHandler(
	cfg ReportConfig,
	kind string,
	fetch func(*domain.ReportFilters, int) ([]*domain.RatedDishItem, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r, cfg.Location)
		if err != nil {
			logger.WithFields(log.Fields{
				"startDate": r.URL.Query().Get("startDate"),
				"endDate":   r.URL.Query().Get("endDate"),
				"error":     err.Error(),
			}).Warn("reviews: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r, "limit", cfg.Reports.DefaultDishLimit, cfg.Reports.MaxDishLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dishes, err := fetch(filters, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"ranking": kind,
				"error":   err.Error(),
			}).Error("reviews: failed to get rated dishes")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dishes); err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetRecentReviews(service reviewing.Reviewer, cfg ReportConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		subjectType, err := parseSubjectType(r.URL.Query().Get("subject"))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("reviews: invalid subject type")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r, "limit", cfg.Reports.DefaultPageSize, cfg.Reports.MaxPageSize)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		reviews, err := service.GetRecentReviews(subjectType, limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to get recent reviews")

			writeEngineError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reviews); err != nil {
			logger.WithField("error", err.Error()).Error("reviews: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
