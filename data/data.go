// Package data wires the persistence layer: the relational store, the
// optional redis cache, and the item repository.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ncobase/catalog/config"
	"github.com/ncobase/catalog/data/repository"
	"github.com/ncobase/catalog/logger"
)

// Data encapsulates all data layer dependencies.
type Data struct {
	DB       *sqlx.DB
	RC       *redis.Client
	ItemRepo repository.ItemRepository
}

// New creates a Data instance with initialized repositories. The returned
// cleanup function closes the database and cache connections.
func New(cfg *config.Data, log *logger.Logger) (*Data, func(), error) {
	db, err := newDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	rc, err := newRedisClient(cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	d := &Data{
		DB:       db,
		RC:       rc,
		ItemRepo: repository.NewItemRepository(db, log),
	}

	cleanup := func() {
		_ = db.Close()
		if rc != nil {
			_ = rc.Close()
		}
	}
	return d, cleanup, nil
}

func newDB(conf *config.DBNode) (*sqlx.DB, error) {
	db, err := sqlx.Connect(conf.Driver, conf.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if conf.MaxIdleConn > 0 {
		db.SetMaxIdleConns(conf.MaxIdleConn)
	}
	if conf.MaxOpenConn > 0 {
		db.SetMaxOpenConns(conf.MaxOpenConn)
	}
	if conf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}

	return db, nil
}

// newRedisClient creates the cache client. An empty address disables
// caching and yields a nil client.
func newRedisClient(conf *config.Redis) (*redis.Client, error) {
	if conf == nil || conf.Addr == "" {
		return nil, nil
	}

	rc := redis.NewClient(&redis.Options{
		Addr:         conf.Addr,
		Username:     conf.Username,
		Password:     conf.Password,
		DB:           conf.Db,
		DialTimeout:  conf.DialTimeout,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
	})

	timeout := conf.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect error: %w", err)
	}

	return rc, nil
}
