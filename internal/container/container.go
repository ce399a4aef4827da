package container

import (
	"context"
	"fmt"
	"time"

	"materialhub/crawler/internal/config"
	"materialhub/crawler/internal/repository"
	"materialhub/crawler/internal/service"
	"materialhub/crawler/internal/source"
	"materialhub/crawler/internal/source/hangel"
	"materialhub/crawler/internal/source/ianmall"
	"materialhub/crawler/internal/source/ohouse"
	"materialhub/crawler/internal/source/symembership"
	"materialhub/crawler/internal/source/zzro"
	"materialhub/crawler/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Registry   *source.Registry
	Repository repository.ProductRepository
	Stats      state.StatsRecorder
	Service    *service.Service

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	db, err := pgxpool.New(context.Background(),
		fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
		))
	if err != nil {
		return nil, fmt.Errorf("failed to open database pool: %w", err)
	}
	container.db = db
	container.Repository = repository.NewProductRepository(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("✅ Connected to Redis successfully")

	container.redis = rdb
	container.Stats = state.NewRedisStatsRecorder(rdb)

	container.Registry = BuildRegistry(cfg)
	container.Service = service.NewService(container.Registry, container.Repository, container.Stats)

	return container, nil
}

// BuildRegistry composes the fixed source catalog, applying per-source
// config overrides on top of each adapter's defaults.
func BuildRegistry(cfg *config.Config) *source.Registry {
	registry := source.NewRegistry()

	registry.Register(&source.Entry{
		ID:          "ohouse",
		Name:        "오하우스",
		Description: "인테리어 마감재 종합몰 (마루/벽지/타일)",
		Adapter:     ohouse.New(overridden(ohouse.DefaultConfig(), cfg, "ohouse")),
	})
	registry.Register(&source.Entry{
		ID:          "zzro",
		Name:        "짜로몰",
		Description: "도장/마감재 도매몰, 페이지네이션 목록",
		Adapter:     zzro.New(overridden(zzro.DefaultConfig(), cfg, "zzro")),
	})
	registry.Register(&source.Entry{
		ID:          "hangel",
		Name:        "한겔건재",
		Description: "목자재/보드류 건자재몰",
		Adapter:     hangel.New(overridden(hangel.DefaultConfig(), cfg, "hangel")),
	})
	registry.Register(&source.Entry{
		ID:          "ianmall",
		Name:        "이안몰",
		Description: "욕실/주방 설비몰, 페이지네이션 목록",
		Adapter:     ianmall.New(overridden(ianmall.DefaultConfig(), cfg, "ianmall")),
	})
	registry.Register(&source.Entry{
		ID:          "symembership",
		Name:        "SY멤버십",
		Description: "도어/창호 딜러몰",
		Adapter:     symembership.New(overridden(symembership.DefaultConfig(), cfg, "symembership")),
	})

	return registry
}

func overridden(def source.Config, cfg *config.Config, id string) source.Config {
	o, ok := cfg.Sources[id]
	if !ok {
		return def
	}
	if o.BaseURL != "" {
		def.BaseURL = o.BaseURL
	}
	if o.DelayMillis > 0 {
		def.Delay = time.Duration(o.DelayMillis) * time.Millisecond
	}
	if o.UserAgent != "" {
		def.UserAgent = o.UserAgent
	}
	return def
}

// Run crawls the configured sources to completion.
func (c *Container) Run(ctx context.Context) error {
	return c.Service.CrawlSources(ctx, c.Config.Crawl.Sources, c.Config.Crawl.Categories)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	c.db.Close()
	if err := c.redis.Close(); err != nil {
		return err
	}

	log.Info("Container shut down successfully")
	return nil
}
