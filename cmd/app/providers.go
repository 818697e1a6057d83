package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	"github.com/naufalrizky/healthscan/internal/domain/history"
	"github.com/naufalrizky/healthscan/internal/infra/config"
	"github.com/naufalrizky/healthscan/internal/infra/historyrepo"
	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
	"github.com/naufalrizky/healthscan/internal/infra/llm"
)

func provideDiagnosisConfig(cfg *config.Config) diagnosis.Config {
	return diagnosis.Config{
		DefaultLocation: cfg.Facility.DefaultLocation,
	}
}

func provideHistoryConfig(cfg *config.Config) history.Config {
	return history.Config{
		Limit: cfg.History.Limit,
	}
}

func provideTextGenerator(cfg *config.Config, logger *slog.Logger) (diagnosis.TextGenerator, error) {
	return llm.NewTextGenerator(cfg.LLM, logger)
}

func provideCooldownGate(cfg *config.Config, store kvstore.Store, logger *slog.Logger) *diagnosis.CooldownGate {
	return diagnosis.NewCooldownGate(store, cfg.Storage.Prefix, cfg.Diagnosis.Cooldown, logger)
}

func provideKVStore(cfg *config.Config, logger *slog.Logger) kvstore.Store {
	if cfg.Storage.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return kvstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return kvstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey store enabled", "addr", cfg.Storage.Valkey.Addr)
			return kvstore.NewValkeyStore(client)
		}
	}
	return kvstore.NewMemoryStore()
}

func provideHistoryRepository(cfg *config.Config, store kvstore.Store, logger *slog.Logger) history.Repository {
	fallback := historyrepo.NewKVRepository(store, cfg.Storage.Prefix)
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using key-value repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using key-value repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using key-value repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using key-value repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := historyrepo.NewPostgresRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		logger.Error("postgres migration failed, using key-value repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("history postgres repository enabled")
	return repo
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Storage.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Storage.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Storage.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
