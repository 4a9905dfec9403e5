//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/tarnished/internal/config"
)

// InitializeApp builds the App from configuration.
func InitializeApp(cfg config.Config) (*App, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideRoller,
		ProvideTypeSet,
		ProvideItemCatalog,
		ProvideBossCatalog,
		ProvideClasses,
		ProvideScripts,
		ProvideTerm,
		ProvidePresenter,
		ProvideCampaign,
		NewApp,
	)
	return nil, nil, nil
}
