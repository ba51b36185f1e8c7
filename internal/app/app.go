package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/akulagin/creditcore/internal/chain"
	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/handlers"
	"github.com/akulagin/creditcore/internal/pg"
	"github.com/akulagin/creditcore/internal/repo"
	"github.com/akulagin/creditcore/internal/service"
	"github.com/akulagin/creditcore/internal/service/paymentservice"
	"github.com/akulagin/creditcore/pkg/clients"
	"github.com/akulagin/creditcore/pkg/logger"
)

const cacheExpiration = time.Hour * 24

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	worker *chain.Worker

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	rpcClient := chain.NewRPCClient(cfg.SolanaRPC, clients.NewHTTPClient())
	verifier := chain.NewVerifier(rpcClient, getCache(cfg), cfg)

	a.srv = service.New(a.repo, cfg, verifier, getKafkaWriter(cfg))
	a.api = handlers.New(a.srv, cfg)
	a.worker = chain.NewWorker(cfg, a.srv.PaymentService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startConfirmationWorker(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// getCache returns nil when redis is not configured; the verifier treats a
// nil cache as a miss on every lookup.
func getCache(cfg *config.Config) chain.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return chain.NewVerificationCache(client, cacheExpiration)
}

// getKafkaWriter returns nil when no brokers are configured; confirmed
// payments are then only logged, not published.
func getKafkaWriter(cfg *config.Config) paymentservice.KafkaWriter {
	if cfg.KafkaBrokers == "" {
		return nil
	}
	// Topic is set per message, so the writer stays topic-agnostic.
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers()...),
		Balancer: &kafka.LeastBytes{},
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startConfirmationWorker(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.worker.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
