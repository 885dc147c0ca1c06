// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dishcovery/v1/internal/application/eateries"
	"github.com/dishcovery/v1/internal/application/ingredients"
	"github.com/dishcovery/v1/internal/application/profiles"
	"github.com/dishcovery/v1/internal/application/recipes"
	"github.com/dishcovery/v1/internal/infrastructure/ai/openai"
	"github.com/dishcovery/v1/internal/infrastructure/config"
	"github.com/dishcovery/v1/internal/infrastructure/http/apiserver"
	gormrepo "github.com/dishcovery/v1/internal/infrastructure/persistence/gorm"
	"github.com/dishcovery/v1/internal/infrastructure/persistence/memory"
	"github.com/dishcovery/v1/internal/infrastructure/persistence/postgres"
	redispersist "github.com/dishcovery/v1/internal/infrastructure/persistence/redis"
	"github.com/dishcovery/v1/internal/infrastructure/persistence/sqlite"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/logger"
)

// Module wires every application dependency
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	CompletionModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection, migrated and seeded
// according to configuration
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		var (
			db  *gorm.DB
			err error
		)

		switch cfg.Database.Driver {
		case "postgres":
			db, err = postgres.Connect(context.Background(), cfg, log)
		default:
			db, err = sqlite.Connect(cfg, log)
		}
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := gormrepo.Migrate(db); err != nil {
				return nil, err
			}
		}

		if cfg.Database.SeedData {
			if err := gormrepo.Seed(db, log); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		return db, nil
	},
)

// CacheModule provides the cache: Redis when enabled, in-memory otherwise
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			client, err := redispersist.NewClient(context.Background(), cfg, log)
			if err != nil {
				return nil, err
			}
			return redispersist.NewCacheRepository(client), nil
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// CompletionModule provides the chat-completion gateway
var CompletionModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CompletionService {
		return openai.NewClient(openai.Config{
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			VisionModel: cfg.AI.VisionModel,
			Timeout:     cfg.AI.Timeout,
		}, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewDishRepository,
	gormrepo.NewRecipeRepository,
	gormrepo.NewProfileRepository,
	gormrepo.NewEateryRepository,
	gormrepo.NewIngredientRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipes.NewRecipeService,
	profiles.NewProfileService,
	eateries.NewEateryService,
	ingredients.NewIngredientService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.New,
)

// LifecycleModule registers start and stop hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
