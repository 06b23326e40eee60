package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/config"
	"github.com/myan0020/locallibrary/internal/handler"
	"github.com/myan0020/locallibrary/internal/repository"
	"github.com/myan0020/locallibrary/internal/server"
	"github.com/myan0020/locallibrary/internal/service"
	"github.com/myan0020/locallibrary/migrations"
	"github.com/myan0020/locallibrary/pkg/kafka"
	"github.com/myan0020/locallibrary/pkg/logger"
	"github.com/myan0020/locallibrary/pkg/postgres"
	"github.com/myan0020/locallibrary/pkg/render"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "locallibrary")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var events service.Enqueuer
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		events = kafka.NewEnqueuer(producer)
	}
	svc := service.NewService(repo, events, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(render.NewJSON()))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
