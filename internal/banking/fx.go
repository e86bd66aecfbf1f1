package banking

import (
	"github.com/covenantworks/covenant/internal/banking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("banking.service",
	fx.Provide(service.NewService),
)
