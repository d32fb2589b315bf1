package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/config"
	"github.com/vfg2006/restaurant-insights-api/internal/domain"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/reviewing"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/trending"
	"github.com/vfg2006/restaurant-insights-api/pkg/utils"
)

// DailyDigestConfig representa a configuração do agendador do resumo diário
type DailyDigestConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyDigestService agenda e executa o resumo diário de desempenho: a cada
// manhã consolida as vendas e avaliações do dia anterior e registra o
// resultado no log estruturado
type DailyDigestService struct {
	scheduler         *gocron.Scheduler
	config            DailyDigestConfig
	location          *time.Location
	trendService      trending.Trender
	reviewService     reviewing.Reviewer
	runMutex          sync.Mutex
	running           bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRunID         string
}

// NewDailyDigestService cria uma nova instância do serviço de resumo diário
func NewDailyDigestService(
	trendService trending.Trender,
	reviewService reviewing.Reviewer,
	location *time.Location,
	appConfig *config.Config,
) *DailyDigestService {
	digestConfig := DailyDigestConfig{
		CronSchedule: appConfig.DailyDigest.CronSchedule,
		Enabled:      appConfig.DailyDigest.Enabled,
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
	}).Info("Configuração do agendador do resumo diário carregada")

	return &DailyDigestService{
		scheduler:     scheduler,
		config:        digestConfig,
		location:      location,
		trendService:  trendService,
		reviewService: reviewService,
	}
}

// Start inicia o agendador
func (s *DailyDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun inicia manualmente uma execução do resumo diário
func (s *DailyDigestService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do resumo diário")
	go s.runDigest()
}

// GetStatus retorna o status atual do agendador
func (s *DailyDigestService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"running":              s.running,
		"last_run_id":          s.lastRunID,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}

// runDigest consolida o dia anterior (no fuso configurado) e registra o
// resultado. Execuções concorrentes são descartadas, nunca enfileiradas.
func (s *DailyDigestService) runDigest() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunFinishedAt = time.Now()
		s.runMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar o identificador da execução do resumo diário")
		return
	}

	s.lastRunID = runID
	s.lastRunStartedAt = time.Now()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando resumo diário")

	now := time.Now().In(s.location)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	start := end.AddDate(0, 0, -1)

	filters := &domain.ReportFilters{StartDate: &start, EndDate: &end}

	trend, err := s.trendService.GetBusinessTrend(filters, analytics.GranularityDay)
	if err != nil {
		logger.WithError(err).Error("Erro ao consolidar as vendas do dia anterior")
		return
	}

	stats, err := s.reviewService.GetReviewStats(domain.ReviewSubjectRestaurant, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao consolidar as avaliações do dia anterior")
		return
	}

	fields := logrus.Fields{
		"date":          start.Format(time.DateOnly),
		"revenue":       trend.Summary.TotalRevenue,
		"orders":        trend.Summary.TotalOrders,
		"customers":     trend.Summary.TotalCustomers,
		"avg_order":     trend.Summary.AvgOrderValue,
		"total_reviews": stats.TotalReviews,
	}
	if stats.AvgRating != nil {
		fields["avg_rating"] = *stats.AvgRating
	}

	logger.WithFields(fields).Info("Resumo diário concluído")
}
