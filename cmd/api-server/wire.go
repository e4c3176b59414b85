//go:build wireinject
// +build wireinject

package main

import (
	"moodmap/config"
	"moodmap/dao"
	"moodmap/handler"
	"moodmap/pkg/client"
	"moodmap/pkg/server"
	"moodmap/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		client.NewRedisClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Map), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil, nil
}
