package cmd

import (
	"os"

	"github.com/emrgen/cataviz/internal/cache"
	"github.com/emrgen/cataviz/internal/config"
	"github.com/emrgen/cataviz/internal/gender"
	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/emrgen/cataviz/internal/store"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// app holds what the commands share: configuration, store and the optional
// redis connection.
type app struct {
	cfg     *config.Config
	store   *store.GormStore
	redis   *redis.Client
	genders *gender.Resolver
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	setupLogger(cfg.LogLevel)
	return cfg, nil
}

func setupLogger(level string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := config.GetDb(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, store: store.NewGormStore(db)}
	if cfg.RedisURL != "" {
		a.redis, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if sqlDB, err := a.store.DB().DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *app) patterns() pipeline.Patterns {
	return pipeline.Patterns{
		Authority: a.cfg.AuthPattern,
		Pre1970:   a.cfg.Pre1970Pattern,
		Post1970:  a.cfg.Post1970Pattern,
	}
}

// driver creates the driver of a new run, with its own identity cache.
func (a *app) driver() (*pipeline.Driver, error) {
	if a.genders == nil {
		genders, err := gender.Default()
		if err != nil {
			return nil, err
		}
		a.genders = genders
	}

	runID := uuid.New()
	var identities cache.IdentityCache = cache.NewMemoryIdentityCache()
	if a.redis != nil {
		identities = cache.NewRedisIdentityCache(a.redis, runID.String())
	}

	return pipeline.NewDriver(pipeline.Options{
		Store:    a.store,
		Cache:    identities,
		Genders:  a.genders,
		Window:   a.cfg.Window(),
		Patterns: a.patterns(),
		RunID:    runID,
	}), nil
}
