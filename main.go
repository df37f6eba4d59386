package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"feebank/internal/api"
	"feebank/internal/auth"
	"feebank/internal/config"
	"feebank/internal/conversation"
	"feebank/internal/knowledge"
	"feebank/internal/portal"
	"feebank/internal/redis"
	"feebank/internal/service/ai"
	"feebank/internal/service/resolver"
	"feebank/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("FEEBANK_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.BasicConfig.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openPortalSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open portal source", zap.Error(err))
	}
	defer closeSource()
	portalService := portal.NewService(source, logger.Named("portal"))

	store, closeStore, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}
	defer closeStore()
	sessionTTL := time.Duration(cfg.BasicConfig.SessionTTL) * time.Minute
	authService := auth.NewService(store, sessionTTL).WithStudentLookup(portalService.KnownStudent)

	kb, err := knowledge.Load(ctx, cfg.Assistant.ContextFile)
	if err != nil {
		logger.Fatal("load assistant context", zap.String("path", cfg.Assistant.ContextFile), zap.Error(err))
	}

	// a nil interface keeps the resolver in fallback mode
	var gen ai.Generator
	providerName, providerCfg := cfg.ActiveProvider()
	chatGen, err := ai.NewGenerator(ctx, providerName, providerCfg)
	switch {
	case err == nil:
		gen = chatGen
		logger.Info("generative replies enabled", zap.String("provider", chatGen.Provider()), zap.String("model", chatGen.Model()))
	case errors.Is(err, ai.ErrNoCredential):
		logger.Warn("no api key configured, answering from local rules only", zap.String("provider", providerName))
	default:
		logger.Warn("generative model unavailable, answering from local rules only",
			zap.String("provider", providerName), zap.Error(err))
	}

	res := resolver.New(kb, gen, resolver.Options{
		Timeout: time.Duration(cfg.Assistant.Timeout) * time.Second,
		Logger:  logger.Named("resolver"),
	})

	sweepInterval := time.Duration(cfg.BasicConfig.SweepInterval) * time.Minute
	if sweepInterval <= 0 {
		sweepInterval = conversation.DefaultSweepInterval
	}
	chats := conversation.NewRegistry(res, time.Duration(cfg.BasicConfig.ConversationIdle)*time.Minute, logger.Named("conversation"))
	chats.StartSweeper(ctx, sweepInterval)
	if mem, ok := store.(*auth.MemoryStore); ok {
		mem.StartSweeper(ctx, sweepInterval)
	}

	if !cfg.BasicConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(authService, chats, portalService, kb, api.Options{
		Generative:     res.GenerativeEnabled(),
		ChatRateLimit:  cfg.BasicConfig.ChatRateLimit,
		TrustedProxies: cfg.BasicConfig.TrustedProxies,
		Logger:         logger.Named("http"),
	})
	router := api.NewRouter(handler)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":8090"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openPortalSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (portal.Source, func(), error) {
	dbType := strings.ToLower(cfg.BasicConfig.DataSource)
	if dbType == "mock" {
		logger.Info("serving portal data from memory")
		return portal.NewMemorySource(portal.DemoDataset()), func() {}, nil
	}

	db, err := storage.Open(ctx, dbType, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = db.Close() }
	if err := storage.Migrate(ctx, db, dbType); err != nil {
		closeDB()
		return nil, nil, err
	}
	src := portal.NewSQLSource(db)
	if cfg.BasicConfig.SeedPortalRecords {
		if err := seed(ctx, src, logger); err != nil {
			closeDB()
			return nil, nil, err
		}
	}
	logger.Info("serving portal data from database", zap.String("driver", storage.Driver(dbType)))
	return src, closeDB, nil
}

func seed(ctx context.Context, src *portal.SQLSource, logger *zap.Logger) error {
	seeded, err := src.Seed(ctx, portal.DemoDataset())
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("seeded demo portal records", zap.String("student_id", portal.DemoStudentID))
	}
	return nil
}

func openSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Store, func(), error) {
	if strings.ToLower(cfg.BasicConfig.SessionStore) != "redis" {
		return auth.NewMemoryStore(logger.Named("sessions")), func() {}, nil
	}
	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("sessions stored in redis", zap.String("addr", redis.Addr(cfg.Redis)))
	return auth.NewRedisStore(client), func() { _ = client.Close() }, nil
}
