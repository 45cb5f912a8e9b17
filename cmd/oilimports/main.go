package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/oilimports/internal/clock"
	"github.com/smallbiznis/oilimports/internal/config"
	"github.com/smallbiznis/oilimports/internal/migration"
	"github.com/smallbiznis/oilimports/internal/observability"
	"github.com/smallbiznis/oilimports/internal/server"
	"github.com/smallbiznis/oilimports/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

// RegisterSnowflake builds the record ID generator for this node.
func RegisterSnowflake(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.NodeID)
}
