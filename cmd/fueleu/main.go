package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/marinex/fueleu/internal/clock"
	"github.com/marinex/fueleu/internal/config"
	"github.com/marinex/fueleu/internal/migration"
	"github.com/marinex/fueleu/internal/server"
	"github.com/marinex/fueleu/pkg/db"
	"github.com/marinex/fueleu/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
