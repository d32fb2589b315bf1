package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-insights-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-insights-api/internal/analytics"
	"github.com/vfg2006/restaurant-insights-api/internal/api"
	"github.com/vfg2006/restaurant-insights-api/internal/config"
	"github.com/vfg2006/restaurant-insights-api/internal/scheduler"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/reviewing"
	"github.com/vfg2006/restaurant-insights-api/internal/usecases/trending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	location, err := cfg.Analytics.Location()
	if err != nil {
		logrus.WithError(err).Fatal("Fuso horário de agregação inválido")
	}
	logrus.Infof("Fuso horário de agregação: %s", cfg.Analytics.Timezone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orderRepo := repository.NewOrderRepository(pgConn)
	orderItemRepo := repository.NewOrderItemRepository(pgConn)
	reviewRepo := repository.NewReviewRepository(pgConn)

	bucketer := analytics.NewBucketer(location, cfg.Analytics.MaxRangeDays)

	trendService := trending.NewService(bucketer, orderRepo)
	rankService := ranking.NewService(orderItemRepo)
	reviewService := reviewing.NewService(bucketer, reviewRepo)

	dailyDigestService := scheduler.NewDailyDigestService(
		trendService,
		reviewService,
		location,
		cfg,
	)

	if err := dailyDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	} else {
		logrus.Info("Agendador do resumo diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trendService,
		rankService,
		reviewService,
		dailyDigestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
