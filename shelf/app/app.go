package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/Astemirdum/myshelf/pkg/logger"
	"github.com/Astemirdum/myshelf/pkg/postgres"
	"github.com/Astemirdum/myshelf/shelf/config"
	"github.com/Astemirdum/myshelf/shelf/internal/handler"
	"github.com/Astemirdum/myshelf/shelf/internal/ledger"
	"github.com/Astemirdum/myshelf/shelf/internal/repository"
	"github.com/Astemirdum/myshelf/shelf/internal/server"
	"github.com/Astemirdum/myshelf/shelf/internal/service"
	"github.com/Astemirdum/myshelf/shelf/migrations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "shelf")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	opts := []service.Option{service.WithPolicy(rentalPolicy(cfg.Rental))}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			// rentals work without events
			log.Warn("kafka producer", zap.Error(err))
		} else {
			defer producer.Close() //nolint:errcheck
			opts = append(opts, service.WithPublisher(service.NewPublisher(producer, log)))
		}
	}

	svc, err := service.NewService(ctx, repo, log, opts...)
	if err != nil {
		return errors.Wrap(err, "service init")
	}
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(gctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if cfg.Rental.ReminderInterval > 0 {
		g.Go(func() error {
			return remind(gctx, svc, cfg.Rental.ReminderInterval)
		})
	}
	if cfg.Kafka.Enabled() {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.ShelfConsumerGroup)
		if err != nil {
			log.Warn("kafka consumer", zap.Error(err))
		} else {
			consumer := handler.NewConsumer(svc.Notify, log)
			g.Go(func() error {
				return kafka.Consume(gctx, log, group, consumer, kafka.NotificationTopic)
			})
		}
	}

	if err := g.Wait(); err != nil {
		log.Error("shelf stopped", zap.Error(err))
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

func rentalPolicy(cfg config.Rental) ledger.Policy {
	return ledger.Policy{
		MaxRenewals:         cfg.MaxRenewals,
		RenewalDays:         cfg.RenewalDays,
		DueSoonDays:         cfg.DueSoonDays,
		MaxBorrowLimit:      cfg.MaxBorrowLimit,
		LateFeePerDay:       cfg.LateFeePerDay,
		AllowOverdueRenewal: cfg.AllowOverdueRenewal,
	}
}

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	switch cfg.Source {
	case config.SourcePostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		repo, err := repository.NewRepository(db, log)
		if err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "repo init")
		}
		return repo, db.Close, nil
	case config.SourceEmbedded, "":
		return repository.NewEmbedded(log), func() {}, nil
	default:
		return nil, nil, errors.Errorf("unknown catalog source %q", cfg.Source)
	}
}

type reminder interface {
	Remind(ctx context.Context) int
}

func remind(ctx context.Context, svc reminder, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			svc.Remind(ctx)
		}
	}
}
