package dimension

import (
	"github.com/smallbiznis/oilimports/internal/dimension/repository"
	"github.com/smallbiznis/oilimports/internal/dimension/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dimension.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(service.AsService),
	fx.Provide(service.AsResolverFactory),
)
