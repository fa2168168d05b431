package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"houses/config"
	"houses/internal/domain/constants"
	"houses/internal/domain/lifecycle"
	"houses/internal/errors"
	"houses/internal/infra/metrics"
	"houses/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval  = 5 * time.Second
	poolWaitWarnBudget = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the houses database. The connection is verified on start, and
// development databases get the houses table migrated in place.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single-row insert; no implicit transaction needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	watcher := newPoolWatcher(sqlDB.Stats, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.Env == constants.EnvDevelop {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go watcher.run(watchCtx, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the houses table. Production schemas are managed
// out of band; development databases are migrated on start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.HouseModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate houses table")
	}

	return nil
}

// poolWatcher logs when requests had to wait for a pooled connection.
type poolWatcher struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	prev   sql.DBStats
}

func newPoolWatcher(stats func() sql.DBStats, logger *slog.Logger) *poolWatcher {
	return &poolWatcher{stats: stats, logger: logger, prev: stats()}
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check compares the pool counters with the previous sample.
func (w *poolWatcher) check(ctx context.Context) {
	cur := w.stats()
	defer func() { w.prev = cur }()

	waits := cur.WaitCount - w.prev.WaitCount
	if waits <= 0 || w.logger == nil {
		return
	}

	waited := cur.WaitDuration - w.prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnBudget {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)
}
