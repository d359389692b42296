package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"nicgate/internal/events"
	"nicgate/internal/jwttoken"
	"nicgate/internal/platform/config"
	"nicgate/internal/platform/httpserver"
	"nicgate/internal/platform/logger"
	"nicgate/internal/platform/middleware"
	platformpg "nicgate/internal/platform/postgres"
	platformredis "nicgate/internal/platform/redis"
	httptransport "nicgate/internal/transport/http"
	validationhandler "nicgate/internal/validation/handler"
	validationmetrics "nicgate/internal/validation/metrics"
	validationservice "nicgate/internal/validation/service"
	"nicgate/internal/validation/store"
)

const (
	jwtIssuer   = "nicgate"
	jwtAudience = "nicgate-admin"
	// eventInboxSize absorbs broker hiccups; overflow drops events rather
	// than blocking validations.
	eventInboxSize = 1024
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages. Every external
// dependency is optional: without Postgres/Redis/Kafka the service degrades
// to in-memory stores and no event stream.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	memory := store.NewInMemoryStore(cfg.ResultCacheTTL)
	health := make(map[string]httptransport.HealthChecker)

	var records store.RecordStore = memory
	pool, err := platformpg.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		pg := store.NewPostgresStore(pool.Pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema setup failed", "error", err)
			os.Exit(1)
		}
		records = pg
		health["postgres"] = pool
		defer pool.Close()
	}

	var cache store.ResultCache = memory
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		cache = store.NewRedisCache(redisClient.Client, cfg.ResultCacheTTL)
		health["redis"] = redisClient
		defer redisClient.Close()
	}

	publisher, err := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Error("kafka unavailable", "error", err)
		os.Exit(1)
	}

	var inbox chan events.ValidationEvent
	if publisher != nil {
		if err := publisher.EnsureTopic(ctx); err != nil {
			log.Error("kafka topic setup failed", "error", err)
			os.Exit(1)
		}
		inbox = make(chan events.ValidationEvent, eventInboxSize)
		defer publisher.Close()
	}

	m := validationmetrics.New()
	svc := validationservice.New(records, cache, inbox, m, log, cfg.RegulatedMode)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, jwtIssuer, jwtAudience)
	authMiddleware := middleware.RequireAuth(jwttoken.NewJWTServiceAdapter(jwtService), log)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Validation: validationhandler.New(svc, log),
		Auth:       authMiddleware,
		Logger:     log,
		Health:     health,
	})

	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting nic-gateway", "addr", cfg.Addr, "regulated", cfg.RegulatedMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if publisher != nil {
		worker := events.NewWorker(publisher, inbox, log)
		group.Go(func() error {
			if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
