package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewBackend,
	ProvideSpatialStore,
	ProvideAuthorDirectory,
)
