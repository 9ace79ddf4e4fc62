package providers_fx

import (
	"go.uber.org/fx"

	"dreamtrip/internal/providers"
)

var Module = fx.Provide(provideGateway)

func provideGateway() providers.Gateway {
	return providers.NewClientFromEnv()
}
