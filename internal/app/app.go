package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/auth"
	config "github.com/DRSN-tech/eshop-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/eshop-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/eshop-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/eshop-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/eshop-backend/internal/repository/minio"
	"github.com/DRSN-tech/eshop-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/eshop-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/eshop-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/eshop-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/clients"
	"github.com/DRSN-tech/eshop-backend/pkg/closer"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
	"github.com/DRSN-tech/eshop-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run(cfg *config.Config, logger logger.Logger) error {
	c := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		return err
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		return err
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		return err
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger)
	c.Add(imagesInfra.WaitForCleanup)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		logger.Errorf(err, "failed to connect to redis")
		return err
	}
	redisCancel()
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		return err
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("failed to ensure kafka topic: %v", err)
	}

	catalogUC := usecase.NewCatalogUC(categoryRepo, productRepo, cacheRepo, imagesInfra, logger)
	orderUC := usecase.NewOrderUC(orderRepo, outboxRepo, catalogUC, userRepo, db.Pool, logger)

	jwtManager := auth.NewJWTManager(cfg.Jwt)
	hasher := auth.NewBcryptHasher()
	userUC := usecase.NewUserUC(userRepo, hasher, jwtManager, logger)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, logger, producer, cfg.Outbox, db.Dsn)
	worker.Start(workerCtx)
	c.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, orderUC, userUC, jwtManager, cfg.Api)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown (LIFO) ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := c.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
