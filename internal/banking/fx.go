package banking

import (
	"github.com/marinex/fueleu/internal/banking/repository"
	"github.com/marinex/fueleu/internal/banking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("banking.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
