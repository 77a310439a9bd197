package main

import (
	"os"

	"github.com/DRSN-tech/eshop-backend/internal/app"
	config "github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

//	@title			Eshop Backend API
//	@version		1.0
//	@description	REST API интернет-магазина: каталог, пользователи, заказы.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
