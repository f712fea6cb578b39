//go:build wireinject
// +build wireinject

package di

import (
	"safari/transport/http"
	"safari/transport/scheduler"

	"github.com/google/wire"
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		scheduler.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
