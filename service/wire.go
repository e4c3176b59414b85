package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(MapService), "*"),
	wire.Bind(new(IMapService), new(*MapService)),
)
