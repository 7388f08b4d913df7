package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/depot/pkg/config"
	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/pkg/logger"
	"github.com/dmitrymomot/depot/pkg/mongo"
	"github.com/dmitrymomot/depot/pkg/pg"
	"github.com/dmitrymomot/depot/pkg/redis"
	"github.com/dmitrymomot/depot/svc/product"
)

// Supported storage backends.
const (
	storeMemory   = "memory"
	storePostgres = "postgres"
	storeMongo    = "mongo"
	storeRedis    = "redis"
)

var (
	ErrUnknownStore    = errors.New("unknown store")
	ErrPostgresOnly    = errors.New("command requires the postgres store")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// appConfig is read from the environment; command line flags win.
type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Store      string `env:"DEPOT_STORE" envDefault:"memory"`
	Locale     string `env:"DEPOT_LOCALE" envDefault:"en"`
	LocalesDir string `env:"DEPOT_LOCALES_DIR"`
	LogLevel   string `env:"DEPOT_LOG_LEVEL" envDefault:"warn"`
}

// app holds the dependencies of a single command run.
type app struct {
	cfg        appConfig
	log        *slog.Logger
	translator *i18n.Translator
	store      product.Store
	service    product.Service
	validator  *product.Validator
	pgPool     *pgxpool.Pool
	pgConfig   pg.Config
	probe      func(timeout time.Duration) func(context.Context) error
	closers    []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func loadConfig(flags *globalFlags) (appConfig, error) {
	if flags.envFile != "" {
		if err := config.LoadEnv(flags.envFile); err != nil {
			return appConfig{}, err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	if flags.store != "" {
		cfg.Store = flags.store
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.localesDir != "" {
		cfg.LocalesDir = flags.localesDir
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	return cfg, nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, errors.Join(ErrInvalidLogLevel, err)
	}
	return logger.New(
		logger.WithEnvironment(config.ParseEnvironment(cfg.Env), "depot"),
		logger.WithOutput(w),
		logger.WithLevel(level),
	), nil
}

func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	}
	if cfg.LocalesDir == "" {
		return product.NewTranslator(ctx, opts...)
	}
	if _, err := os.Stat(cfg.LocalesDir); err != nil {
		return nil, fmt.Errorf("locales dir: %w", err)
	}
	return i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.LocalesDir), opts...)
}

// newApp wires config, logging, translations and the selected store.
func newApp(ctx context.Context, flags *globalFlags, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		return nil, err
	}

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, translator: tr}
	if err := a.openStore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	locale := i18n.ResolveLocale(cfg.Locale, tr.SupportedLanguages(), tr.DefaultLanguage())
	svc, err := product.NewService(a.store, tr,
		product.WithLogger(log),
		product.WithLocale(locale),
		product.WithStoreName(cfg.Store),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.service = svc

	a.validator, err = product.NewValidator(a.store, tr, locale)
	if err != nil {
		a.Close()
		return nil, err
	}

	if flags.fixtures != "" {
		if _, err := a.seed(ctx, flags.fixtures); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.Store {
	case storeMemory:
		a.store = product.NewMemoryStore()
		a.probe = func(time.Duration) func(context.Context) error {
			return func(context.Context) error { return nil }
		}

	case storePostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pool.Close)
		a.store = product.NewPostgresStore(pool)
		a.pgPool, a.pgConfig = pool, cfg
		a.probe = func(d time.Duration) func(context.Context) error { return pg.Healthcheck(pool, d) }

	case storeMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = db.Client().Disconnect(context.Background()) })
		s := product.NewMongoStore(db)
		if err := s.EnsureIndexes(ctx); err != nil {
			return err
		}
		a.store = s
		a.probe = func(d time.Duration) func(context.Context) error { return mongo.Healthcheck(db.Client(), d) }

	case storeRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		a.store = product.NewRedisStore(client, cfg.KeyPrefix)
		a.probe = func(d time.Duration) func(context.Context) error { return redis.Healthcheck(client, d) }

	default:
		return fmt.Errorf("%w %q: use %s, %s, %s or %s",
			ErrUnknownStore, a.cfg.Store, storeMemory, storePostgres, storeMongo, storeRedis)
	}

	a.log.DebugContext(ctx, "store opened", logger.Store(a.cfg.Store))
	return nil
}

func (a *app) seed(ctx context.Context, path string) (product.Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fixtures, err := product.LoadFixtures(ctx, a.store, f)
	if err != nil {
		return nil, err
	}
	a.log.InfoContext(ctx, "fixtures loaded", slog.Int("count", len(fixtures)), logger.Store(a.cfg.Store))
	return fixtures, nil
}

// context returns ctx carrying the configured locale.
func (a *app) context(ctx context.Context) context.Context {
	return i18n.SetLocale(ctx, a.cfg.Locale)
}
