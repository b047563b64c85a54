package compliance

import (
	"github.com/marinex/fueleu/internal/compliance/repository"
	"github.com/marinex/fueleu/internal/compliance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("compliance.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
