package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/api"
	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/mail"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/twmb/franz-go/pkg/kgo"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := postgres.Migrate(configs.DSN()); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	var producer kafka.Producer
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		client, err := kgo.NewClient(
			kgo.SeedBrokers(brokers...),
			kgo.DefaultProduceTopic(configs.KafkaOrderChangedTopic),
		)
		if err != nil {
			log.Fatalf("connect kafka: %v", err)
		}
		defer client.Close()
		producer = client
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, producer, newMailer(configs, logger), logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	startWebServer(app, configs.HTTPPort, logger)

	jobManager.StopAll()
	app.WaitForNotifications()
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the process environment is used as is.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func newMailer(configs cmd.Config, logger *slog.Logger) ports.Mailer {
	if configs.SMTPHost == "" {
		logger.Warn("SMTP_HOST is not set, emails are written to the log")
		return mail.NewLogMailer(logger)
	}
	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUsername,
		Password: configs.SMTPPassword,
		From:     configs.SMTPFrom,
	})
	if err != nil {
		log.Fatalf("configure smtp: %v", err)
	}
	return mailer
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := httpin.NewRouter(ctx, httpin.NewServer(app.HTTPHandlers()), app.TokenIssuer(), api.OpenAPI, logger)
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
