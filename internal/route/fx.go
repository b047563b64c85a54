package route

import (
	"github.com/marinex/fueleu/internal/route/repository"
	"github.com/marinex/fueleu/internal/route/service"
	"go.uber.org/fx"
)

var Module = fx.Module("route.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
