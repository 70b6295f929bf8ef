// Package sqlite contains the concrete implementation of the durable client
// storage using GORM over an embedded SQLite database. It is the Go
// equivalent of the browser storefront's localStorage.
package sqlite

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the local database and migrates the client storage tables.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Storage.Path), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local database")
	}

	if err := db.AutoMigrate(&model.SessionModel{}, &model.EntitlementSnapshotModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate local database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get local sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()
			_ = ctx

			params.Logger.Info("Closing local database")

			return errors.Wrap(sqlDB.Close(), "failed to close local database")
		},
	})

	return db, nil
}
