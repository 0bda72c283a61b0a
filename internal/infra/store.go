package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/cache"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/repository"
	"github.com/umalmyha/customer-directory/pkg/db/transactor"
)

// Store is customer data source selected by STORE_DRIVER
type Store struct {
	Transactor transactor.Transactor
	Customers  repository.CustomerRepository
	closeFn    func(context.Context) error
}

// Close releases underlying connections
func (s *Store) Close(ctx context.Context) error {
	return s.closeFn(ctx)
}

// OpenStore connects to configured data source, sql schemas are migrated before use
func OpenStore(ctx context.Context, cfg config.APIConfig) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if err := MigratePostgres(cfg.PostgresCfg); err != nil {
			return nil, err
		}

		pool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, err
		}

		return &Store{
			Transactor: transactor.NewPgxTransactor(pool),
			Customers:  repository.NewPostgresCustomerRepository(transactor.NewPgxWithinTransactionExecutor(pool)),
			closeFn: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil
	case config.StoreDriverMongo:
		client, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, err
		}

		return &Store{
			Transactor: transactor.NewNopTransactor(),
			Customers:  repository.NewMongoCustomerRepository(client),
			closeFn:    client.Disconnect,
		}, nil
	case config.StoreDriverSQLite:
		if err := MigrateSQLite(cfg.SQLiteCfg); err != nil {
			return nil, err
		}

		db, err := SQLite(ctx, cfg.SQLiteCfg)
		if err != nil {
			return nil, err
		}

		return &Store{
			Transactor: transactor.NewSQLTransactor(db),
			Customers:  repository.NewSQLiteCustomerRepository(transactor.NewSQLWithinTransactionExecutor(db)),
			closeFn: func(context.Context) error {
				return db.Close()
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// CustomerCache builds redis customer cache if redis is configured, noop cache is used otherwise
func CustomerCache(ctx context.Context, cfg config.RedisCfg) (cache.CustomerCacheRepository, func() error, error) {
	if !cfg.Enabled() {
		logrus.Info("redis address is not configured, customers won't be cached")
		return cache.NewNoopCustomerCache(), func() error { return nil }, nil
	}

	client, err := Redis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisCustomerCache(client, cfg.CustomerTTL), client.Close, nil
}
