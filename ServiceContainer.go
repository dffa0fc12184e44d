package main

import (
	"gridCalc/contracts"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	SheetManager      contracts.SheetManager
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logger zerolog.Logger) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
	if err != nil {
		return
	}

	container.SheetRepository = NewSheetRepository(container.Database, NewCellBinarySerializer())

	manager, err := NewSheetManager(container.SheetRepository, config.Rows, config.Cols)
	if err != nil {
		return
	}
	container.SheetManager = manager

	container.WebhookDispatcher = NewWebhookDispatcher(logger)
	container.ApiController = NewApiController(container.SheetManager, container.WebhookDispatcher)
	container.Router = SetupRouter(container.ApiController)

	return
}
