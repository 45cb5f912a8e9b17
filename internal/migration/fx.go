package migration

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(func(conn *gorm.DB, log *zap.Logger) error {
		version, err := Run(conn)
		if err != nil {
			log.Error("schema migration failed", zap.Error(err))
			return err
		}
		log.Info("schema up to date",
			zap.String("dialect", conn.Dialector.Name()),
			zap.Uint("version", version),
		)
		return nil
	}),
)
