package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-insights-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/reviewing"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/trending"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(trendService trending.Trender, rankService ranking.Ranker, cfg ReportConfig) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/sales/trend",
			Method:  http.MethodGet,
			Handler: GetBusinessTrend(trendService, cfg),
		},
		{
			Path:    "/v1/dashboard/sales/dishes",
			Method:  http.MethodGet,
			Handler: GetDishRevenue(rankService, cfg),
		},
		{
			Path:    "/v1/dashboard/sales/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryRevenue(rankService, cfg),
		},
	}
}

func Reviews(service reviewing.Reviewer, cfg ReportConfig) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/reviews/trend",
			Method:  http.MethodGet,
			Handler: GetReviewTrend(service, cfg),
		},
		{
			Path:    "/v1/dashboard/menu/top-rated",
			Method:  http.MethodGet,
			Handler: GetTopRatedDishes(service, cfg),
		},
		{
			Path:    "/v1/dashboard/menu/lowest-rated",
			Method:  http.MethodGet,
			Handler: GetLowestRatedDishes(service, cfg),
		},
		{
			Path:    "/v1/dashboard/reviews/stats",
			Method:  http.MethodGet,
			Handler: GetReviewStats(service, cfg),
		},
		{
			Path:    "/v1/dashboard/reviews/detail",
			Method:  http.MethodGet,
			Handler: GetReviewsDetail(service, cfg),
		},
		{
			Path:    "/v1/dashboard/reviews/recent",
			Method:  http.MethodGet,
			Handler: GetRecentReviews(service, cfg),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
