package main

import (
	appfx "github.com/arindama-pkmk/ta-server-sub000/internal/fx"

	"go.uber.org/fx"
)

// @title ta-server API
// @version 1.0
// @description Layanan evaluasi rasio keuangan pribadi.
// @BasePath /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
