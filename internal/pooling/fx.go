package pooling

import (
	"github.com/marinex/fueleu/internal/pooling/repository"
	"github.com/marinex/fueleu/internal/pooling/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pooling.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
