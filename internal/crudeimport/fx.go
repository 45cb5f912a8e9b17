package crudeimport

import (
	"github.com/smallbiznis/oilimports/internal/crudeimport/repository"
	"github.com/smallbiznis/oilimports/internal/crudeimport/service"
	"go.uber.org/fx"
)

var Module = fx.Module("crudeimport.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
