package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/internal/api/handler"
	"github.com/vfg2006/restaurant-insights-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-insights-api/internal/config"
	"github.com/vfg2006/restaurant-insights-api/internal/scheduler"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/reviewing"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	trendService trending.Trender,
	rankService ranking.Ranker,
	reviewService reviewing.Reviewer,
	dailyDigestService *scheduler.DailyDigestService,
) (*Server, error) {
	location, err := cfg.Analytics.Location()
	if err != nil {
		return nil, err
	}

	reportConfig := handler.ReportConfig{
		Location: location,
		Reports:  cfg.Reports,
	}

	cronServices := handler.CronJobServices{
		DailyDigestService: dailyDigestService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(trendService, rankService, reportConfig)...),
		router.WithRoutes(handler.Reviews(reviewService, reportConfig)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
